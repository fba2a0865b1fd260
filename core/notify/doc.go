// Package notify is the user-facing notification channel: a transient,
// auto-dismissing queue of success, error, info and warning messages.
//
// Titles and descriptions are catalog keys resolved through core/i18n in the
// center's language. Keys missing from the catalog are shown verbatim, so a
// server-provided message can be passed where a key is expected.
//
//	center, err := notify.NewCenter(notify.WithLanguage("en"), notify.WithTTL(3*time.Second))
//	defer center.Close()
//
//	sub := center.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data.Title, msg.Data.Description)
//		}
//	}()
//
//	center.Notify(ctx, notify.KindSuccess, "cart.added.title", "cart.added.description", i18n.M{"name": "Phone"})
package notify
