// Command cli registers a user directly against the configured
// database, bypassing the HTTP endpoint. Intended for seeding the
// first account or operating on an instance that is not running.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dpetrovs/userreg/internal/cryptox"
	"github.com/dpetrovs/userreg/internal/logging"
	"github.com/dpetrovs/userreg/internal/secretx"
	"github.com/dpetrovs/userreg/internal/server/config"
	"github.com/dpetrovs/userreg/internal/server/shared/db"
	"github.com/dpetrovs/userreg/internal/server/users"
)

func prompt(reader *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s: ", label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads without echo so the plaintext never appears on
// the terminal or in scrollback.
func promptPassword(label string) (*secretx.Secret, error) {
	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	return secretx.New(raw), nil
}

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewJSON()
	if requested := cfg.DatabaseType; !cfg.NormalizeBackend() {
		logger.Warn(ctx, "unknown database type, falling back to sqlite", "requested", requested)
	}

	manager, err := db.NewRepositoryManager(ctx, cfg)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer manager.Close()

	service := users.NewService(manager.Users(), cryptox.NewArgon2idHasher(), logger)

	reader := bufio.NewReader(os.Stdin)

	username, err := prompt(reader, "Username")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	email, err := prompt(reader, "Email")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}

	password, err := promptPassword("Password")
	if err != nil {
		log.Fatalf("read error: %v", err)
	}
	confirm, err := promptPassword("Confirm password")
	if err != nil {
		password.Zero()
		log.Fatalf("read error: %v", err)
	}

	match := string(password.Expose()) == string(confirm.Expose())
	confirm.Zero()
	if !match {
		password.Zero()
		log.Fatal("passwords do not match")
	}

	if username == "" || email == "" || len(password.Expose()) == 0 {
		password.Zero()
		log.Fatal("username, email and password are required")
	}

	if err := service.Register(ctx, username, email, password); err != nil {
		log.Fatalf("registration failed: %v", err)
	}

	fmt.Printf("user %q registered\n", username)
}
