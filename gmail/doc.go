// Package gmail provides a thin client façade over the Gmail API.
//
// Every operation is a single request/response round trip against the remote
// service: there is no retry, no caching and no pagination orchestration
// beyond forwarding a single page token. Failures are terminal for the call
// that produced them and must be handled by the caller.
//
// The package exposes two surfaces:
//
//   - Client, constructed once from a resolved credential bundle and reusable
//     across calls. Distinct clients do not interact; a shared client's
//     methods are independent round trips.
//   - Package-level functions (ListMessages, SendMessage, ...) that resolve
//     credentials and build a short-lived client per call.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewDefaultClient(ctx, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	labels, err := client.ListLabels("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sent, err := client.SendMessage("", &gmail.OutgoingMessage{
//	    To:      []string{"recipient@example.com"},
//	    Subject: "Hello",
//	    Body:    "This is a test email",
//	})
package gmail
