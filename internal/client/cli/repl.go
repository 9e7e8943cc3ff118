package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Sync(ctx context.Context) error
	Currencies(ctx context.Context) error
	Clear(ctx context.Context) error
	Guess(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Dutch CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - sync           fetch currencies from the server
//	  - currencies     list cached currencies
//	  - guess          guess the default currency from your location
//	  - exit | quit    leave the program
//
//	Logged in, additionally:
//	  - whoami         show the current user
//	  - clear          drop cached currencies
//	  - logout         log out
//
// Errors returned by command handlers are not printed here; the query
// client has already notified the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("dutch %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, (s)ync, (c)urrencies, clear, guess, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (s)ync, (c)urrencies, guess, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "s", "sync":
			_ = a.Sync(ctx)

		case "c", "currencies":
			_ = a.Currencies(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "guess":
			_ = a.Guess(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
