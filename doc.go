// Package realtime provides the realtime messaging client for the irepair
// garage platform. It maintains a single WebSocket connection to the
// messaging backend, multiplexes inbound events to per-topic subscribers,
// encodes typed room commands, and reconnects autonomously with capped
// exponential backoff.
//
// Basic usage:
//
//	client, err := realtime.NewClient(realtime.Config{
//	    BaseURL: "https://api.irepair.example",
//	    Tokens:  realtime.StaticToken(token),
//	    UserID:  "staff-42",
//	}, realtime.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stop := client.OnNewMessage(func(msg realtime.ChatMessage) {
//	    fmt.Printf("[%s] %s\n", msg.SenderID, msg.Content)
//	})
//	defer stop()
//
//	client.Connect()
//	defer client.Disconnect()
//
//	client.JoinConversation("conv-123")
//
// Delivery is best-effort: a command sent while the connection is down is
// dropped and reported only through its boolean return, and events that
// arrive while the connection is re-establishing are lost. Screens that need
// complete state should re-fetch it over REST when OnConnectionChange
// reports true.
package realtime
