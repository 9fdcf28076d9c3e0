// Chat Console — an interactive terminal client for the irepair realtime
// messaging backend, built with the realtime SDK.
//
// Configuration via environment variables (a .env file is loaded if present):
//
//	IREPAIR_BASE_URL   — HTTP origin of the backend (e.g. https://api.irepair.example)
//	IREPAIR_AUTH_TOKEN — bearer token for the staff session
//	IREPAIR_USER_ID    — staff user id used in typing indicators and receipts
//
// Usage:
//
//	IREPAIR_BASE_URL=http://localhost:3000 \
//	IREPAIR_AUTH_TOKEN=dev-token \
//	IREPAIR_USER_ID=staff-1 \
//	  go run ./cmd/chat-console
//
// Commands: join <conv>, leave <conv>, typing <conv> <on|off>,
// read <conv> <msg>, quit.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	realtime "github.com/irepair/realtime-go-sdk"
)

func main() {
	godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	client, err := realtime.NewClient(realtime.Config{
		// All fields read from IREPAIR_* env vars by default
	}, realtime.WithLogger(logger))
	if err != nil {
		log.Fatalf("NewClient: %v", err)
	}

	client.OnConnectionChange(func(connected bool) {
		if connected {
			fmt.Println("--- connected ---")
		} else {
			fmt.Println("--- disconnected ---")
		}
	})

	client.OnNewMessage(func(msg realtime.ChatMessage) {
		fmt.Printf("[%s] %s: %s\n", msg.ConversationID, msg.SenderID, msg.Content)
	})
	client.OnUserTyping(func(ev realtime.TypingEvent) {
		if ev.IsTyping {
			fmt.Printf("[%s] %s is typing...\n", ev.ConversationID, ev.UserID)
		}
	})
	client.OnMessageRead(func(r realtime.ReadReceipt) {
		fmt.Printf("[%s] %s read %s\n", r.ConversationID, r.UserID, r.MessageID)
	})
	client.OnConversationUpdated(func(ev realtime.ConversationEvent) {
		fmt.Printf("[%s] conversation updated (%s)\n", ev.ConversationID, ev.Action)
	})

	if err := client.Connect(); err != nil {
		log.Fatalf("Connect: %v", err)
	}
	defer client.Disconnect()

	fmt.Println("chat console ready; commands: join, leave, typing, read, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "join":
			if len(fields) != 2 {
				fmt.Println("usage: join <conversation-id>")
				continue
			}
			report(client.JoinConversation(fields[1]))
		case "leave":
			if len(fields) != 2 {
				fmt.Println("usage: leave <conversation-id>")
				continue
			}
			report(client.LeaveConversation(fields[1]))
		case "typing":
			if len(fields) != 3 || (fields[2] != "on" && fields[2] != "off") {
				fmt.Println("usage: typing <conversation-id> <on|off>")
				continue
			}
			report(client.SendTyping(fields[1], fields[2] == "on"))
		case "read":
			if len(fields) != 3 {
				fmt.Println("usage: read <conversation-id> <message-id>")
				continue
			}
			report(client.MarkMessageAsRead(fields[1], fields[2]))
		case "quit":
			return
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func report(sent bool) {
	if !sent {
		fmt.Println("(not connected, command dropped)")
	}
}
