// Integration test against a live irepair backend.
//
// Prerequisites:
//   - Backend running locally with the websocket endpoint mounted at /ws
//   - A valid staff session token
//
// Usage:
//
//	IREPAIR_BASE_URL=http://localhost:3000 \
//	IREPAIR_AUTH_TOKEN=dev-token \
//	IREPAIR_USER_ID=staff-1 \
//	  go run ./cmd/integration-test
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	realtime "github.com/irepair/realtime-go-sdk"
)

const testConversation = "integration-test-conversation"

func main() {
	godotenv.Load()
	log.SetFlags(log.Ltime | log.Lmicroseconds)
	passed := 0
	failed := 0

	fmt.Println("=== irepair Realtime SDK Integration Test ===")
	fmt.Println()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// --- Test 1: Construct a client from the environment ---
	fmt.Println("[Test 1] Construct client from environment...")

	client, err := realtime.NewClient(realtime.Config{},
		realtime.WithLogger(logger),
		realtime.WithReconnectDelay(500*time.Millisecond, 5*time.Second),
	)
	if err != nil {
		log.Fatalf("  FAIL: NewClient: %v", err)
	}
	fmt.Println("  PASS")
	passed++

	// --- Test 2: Connect and observe the open notification ---
	fmt.Println("[Test 2] Connect...")

	changes := make(chan bool, 16)
	client.OnConnectionChange(func(connected bool) { changes <- connected })

	wildcard := make(chan realtime.Event, 16)
	client.On(realtime.TopicWildcard, func(ev realtime.Event) { wildcard <- ev })

	if err := client.Connect(); err != nil {
		log.Fatalf("  FAIL: Connect: %v", err)
	}
	defer client.Disconnect()

	if waitFor(changes, true, 15*time.Second) {
		fmt.Println("  PASS")
		passed++
	} else {
		fmt.Println("  FAIL: no connected notification within 15s")
		failed++
	}

	// --- Test 3: State reporting ---
	fmt.Println("[Test 3] State reporting...")

	if client.IsConnected() && client.State() == realtime.StateOpen {
		fmt.Println("  PASS")
		passed++
	} else {
		fmt.Printf("  FAIL: IsConnected=%v State=%v\n", client.IsConnected(), client.State())
		failed++
	}

	// --- Test 4: Room commands are accepted while connected ---
	fmt.Println("[Test 4] Join, typing, read receipt, leave...")

	ok := client.JoinConversation(testConversation)
	ok = client.SendTyping(testConversation, true) && ok
	ok = client.SendTyping(testConversation, false) && ok
	ok = client.MarkMessageAsRead(testConversation, "integration-test-message") && ok
	ok = client.LeaveConversation(testConversation) && ok
	if ok {
		fmt.Println("  PASS")
		passed++
	} else {
		fmt.Println("  FAIL: a command reported not-sent while connected")
		failed++
	}

	// --- Test 5: Inbound events (requires backend traffic) ---
	fmt.Println("[Test 5] Inbound events...")
	fmt.Println("  NOTE: requires another session producing events; timeout is a SKIP.")

	select {
	case ev := <-wildcard:
		fmt.Printf("  PASS: received %q event\n", ev.Type)
		passed++
	case <-time.After(5 * time.Second):
		fmt.Println("  SKIP: no inbound events within 5s")
	}

	// --- Test 6: Disconnect is clean and final ---
	fmt.Println("[Test 6] Disconnect...")

	client.Disconnect()
	if !client.IsConnected() && waitFor(changes, false, 5*time.Second) {
		fmt.Println("  PASS")
		passed++
	} else {
		fmt.Println("  FAIL: still connected after Disconnect")
		failed++
	}

	// --- Summary ---
	fmt.Println()
	fmt.Println("=== Results ===")
	fmt.Printf("  Passed: %d\n", passed)
	fmt.Printf("  Failed: %d\n", failed)

	if failed > 0 {
		os.Exit(1)
	}
}

func waitFor(changes <-chan bool, want bool, timeout time.Duration) bool {
	deadline := time.After(timeout)
	for {
		select {
		case got := <-changes:
			if got == want {
				return true
			}
		case <-deadline:
			return false
		}
	}
}
