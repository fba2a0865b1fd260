package notify

import "github.com/dmitrymomot/storefront/core/i18n"

var catalogES = map[string]any{
	"auth": map[string]any{
		"session_invalid": map[string]any{
			"title":       "Sesión Invalida",
			"description": "No se pudo comprobar la autenticacion de sesion.",
		},
		"login_success": map[string]any{
			"title":       "¡Bienvenido!",
			"description": "Has iniciado sesión exitosamente.",
		},
		"login_failed": map[string]any{
			"title":       "Error de inicio de sesión",
			"description": "Credenciales inválidas.",
		},
		"register_success": map[string]any{
			"title":       "¡Registro exitoso!",
			"description": "Tu cuenta ha sido creada.",
		},
		"register_failed": map[string]any{
			"title":       "Error de registro",
			"description": "Hubo un problema al registrarte.",
		},
		"logout": map[string]any{
			"title":       "Sesión cerrada",
			"description": "Has cerrado sesión exitosamente.",
		},
	},
	"cart": map[string]any{
		"denied": map[string]any{
			"title":  "Acceso denegado",
			"add":    "Debes iniciar sesión para añadir productos al carrito.",
			"modify": "Debes iniciar sesión para modificar el carrito.",
			"clear":  "Debes iniciar sesión para vaciar el carrito.",
		},
		"updated": map[string]any{
			"title":       "Carrito Actualizado",
			"description": "Se añadió más de %{name} al carrito.",
		},
		"added": map[string]any{
			"title":       "Producto Añadido",
			"description": "%{name} se añadió al carrito.",
		},
		"removed": map[string]any{
			"title":       "Producto Eliminado",
			"description": "El producto ha sido eliminado del carrito.",
		},
		"quantity": map[string]any{
			"title":       "Cantidad Actualizada",
			"description": "La cantidad del producto ha sido actualizada.",
		},
		"cleared": map[string]any{
			"title":       "Carrito Vaciado",
			"description": "Todos los productos han sido eliminados del carrito.",
		},
		"error": map[string]any{
			"title":    "Error de Carrito",
			"load":     "No se pudo cargar el carrito.",
			"save":     "No se pudo guardar el carrito.",
			"quantity": "La cantidad debe ser mayor que cero.",
		},
		"items": map[string]string{
			"one":   "%{count} producto",
			"other": "%{count} productos",
		},
	},
	"stores": map[string]any{
		"error": map[string]any{
			"title": "Error",
			"save":  "No se pudo guardar la selección de tienda.",
			"load":  "No se pudieron cargar las tiendas: %{message}",
		},
	},
	"list": map[string]any{
		"error": map[string]any{
			"title": "Error de carga",
		},
		"fallback": map[string]any{
			"products":   "Error desconocido al cargar productos",
			"categories": "Error desconocido al cargar categorías",
			"stores":     "Error desconocido al cargar tiendas",
			"orders":     "Error desconocido al cargar órdenes",
			"generic":    "Error al obtener los datos.",
		},
	},
	"checkout": map[string]any{
		"empty": map[string]any{
			"title":       "Carrito Vacío",
			"description": "No hay productos en tu carrito para realizar el checkout.",
		},
		"success": map[string]any{
			"title":       "Checkout Exitoso",
			"description": "Tu orden ha sido procesada con éxito!",
		},
		"validation": map[string]any{
			"title": "Error de Validación",
			"store": "Selecciona una tienda válida.",
			"items": "El carrito contiene productos inválidos.",
		},
		"error": map[string]any{
			"title":    "Error de Checkout",
			"fallback": "Ocurrió un error al procesar tu orden.",
		},
	},
	"validation": map[string]any{
		"required":   "%{field} es requerido",
		"min_length": "%{field} debe tener al menos %{min} caracteres",
		"max_length": "%{field} no puede exceder los %{max} caracteres",
		"min_items":  "%{field} debe contener al menos %{min} elementos",
		"max_items":  "%{field} no puede contener más de %{max} elementos",
		"min":        "%{field} debe ser al menos %{min}",
		"max":        "%{field} no puede ser mayor que %{max}",
		"email":      "Correo electrónico inválido",
		"positive":   "%{field} debe ser un número entero positivo",
		"in":         "%{field} debe ser uno de: %{values}",
	},
	"fields": map[string]any{
		"name":             "El nombre",
		"apellido_paterno": "El apellido paterno",
		"apellido_materno": "El apellido materno",
		"email":            "El correo electrónico",
		"password":         "La contraseña",
		"role":             "El rol",
		"store_id":         "El ID de la tienda",
		"product_id":       "El ID del producto",
		"quantity":         "La cantidad",
		"items":            "La orden",
		"status":           "El estado",
	},
}

var catalogEN = map[string]any{
	"auth": map[string]any{
		"session_invalid": map[string]any{
			"title":       "Invalid session",
			"description": "The session could not be verified.",
		},
		"login_success": map[string]any{
			"title":       "Welcome!",
			"description": "You have signed in successfully.",
		},
		"login_failed": map[string]any{
			"title":       "Sign-in error",
			"description": "Invalid credentials.",
		},
		"register_success": map[string]any{
			"title":       "Registration complete!",
			"description": "Your account has been created.",
		},
		"register_failed": map[string]any{
			"title":       "Registration error",
			"description": "There was a problem creating your account.",
		},
		"logout": map[string]any{
			"title":       "Signed out",
			"description": "You have signed out successfully.",
		},
	},
	"cart": map[string]any{
		"denied": map[string]any{
			"title":  "Access denied",
			"add":    "You must sign in to add products to the cart.",
			"modify": "You must sign in to modify the cart.",
			"clear":  "You must sign in to empty the cart.",
		},
		"updated": map[string]any{
			"title":       "Cart updated",
			"description": "Added more %{name} to the cart.",
		},
		"added": map[string]any{
			"title":       "Product added",
			"description": "%{name} was added to the cart.",
		},
		"removed": map[string]any{
			"title":       "Product removed",
			"description": "The product was removed from the cart.",
		},
		"quantity": map[string]any{
			"title":       "Quantity updated",
			"description": "The product quantity was updated.",
		},
		"cleared": map[string]any{
			"title":       "Cart emptied",
			"description": "All products were removed from the cart.",
		},
		"error": map[string]any{
			"title":    "Cart error",
			"load":     "The cart could not be loaded.",
			"save":     "The cart could not be saved.",
			"quantity": "The quantity must be greater than zero.",
		},
		"items": map[string]string{
			"one":   "%{count} item",
			"other": "%{count} items",
		},
	},
	"stores": map[string]any{
		"error": map[string]any{
			"title": "Error",
			"save":  "The store selection could not be saved.",
			"load":  "Stores could not be loaded: %{message}",
		},
	},
	"list": map[string]any{
		"error": map[string]any{
			"title": "Loading error",
		},
		"fallback": map[string]any{
			"products":   "Unknown error while loading products",
			"categories": "Unknown error while loading categories",
			"stores":     "Unknown error while loading stores",
			"orders":     "Unknown error while loading orders",
			"generic":    "Failed to fetch data.",
		},
	},
	"checkout": map[string]any{
		"empty": map[string]any{
			"title":       "Empty cart",
			"description": "There are no products in your cart to check out.",
		},
		"success": map[string]any{
			"title":       "Checkout complete",
			"description": "Your order was processed successfully!",
		},
		"validation": map[string]any{
			"title": "Validation error",
			"store": "Select a valid store.",
			"items": "The cart contains invalid products.",
		},
		"error": map[string]any{
			"title":    "Checkout error",
			"fallback": "An error occurred while processing your order.",
		},
	},
	"validation": map[string]any{
		"required":   "%{field} is required",
		"min_length": "%{field} must be at least %{min} characters",
		"max_length": "%{field} cannot exceed %{max} characters",
		"min_items":  "%{field} must contain at least %{min} items",
		"max_items":  "%{field} cannot contain more than %{max} items",
		"min":        "%{field} must be at least %{min}",
		"max":        "%{field} cannot be greater than %{max}",
		"email":      "Invalid email address",
		"positive":   "%{field} must be a positive integer",
		"in":         "%{field} must be one of: %{values}",
	},
	"fields": map[string]any{
		"name":             "Name",
		"apellido_paterno": "Paternal surname",
		"apellido_materno": "Maternal surname",
		"email":            "Email",
		"password":         "Password",
		"role":             "Role",
		"store_id":         "Store ID",
		"product_id":       "Product ID",
		"quantity":         "Quantity",
		"items":            "The order",
		"status":           "Status",
	},
}

// DefaultCatalog returns the built-in catalog with Spanish as the default
// language and English as an alternative.
func DefaultCatalog(opts ...i18n.Option) (*i18n.I18n, error) {
	base := []i18n.Option{
		i18n.WithDefaultLanguage("es"),
		i18n.WithTranslations("es", Namespace, catalogES),
		i18n.WithTranslations("en", Namespace, catalogEN),
	}
	return i18n.New(append(base, opts...)...)
}
