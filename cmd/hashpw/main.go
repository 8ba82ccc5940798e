// Command hashpw prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/jrsteele09/go-employee-server/users"
	"golang.org/x/term"
)

const minPasswordLength = 6

func main() {
	password, err := readPassword()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	hash, err := users.HashPassword(password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to hash password: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}

// readPassword prompts twice without echo on a terminal. Piped input is read as a single line.
func readPassword() (string, error) {
	fd := int(syscall.Stdin)
	if !term.IsTerminal(fd) {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read password: %v", err)
		}
		return checkLength(strings.TrimRight(line, "\r\n"))
	}

	fmt.Fprint(os.Stderr, "Enter password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %v", err)
	}

	fmt.Fprint(os.Stderr, "Confirm password: ")
	confirmPassword, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password confirmation: %v", err)
	}

	if string(password) != string(confirmPassword) {
		return "", errors.New("passwords do not match")
	}
	return checkLength(string(password))
}

func checkLength(password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return password, nil
}
