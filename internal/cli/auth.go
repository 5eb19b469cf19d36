package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/idilsaglam/planner/internal/auth"
	"github.com/idilsaglam/planner/internal/ui"
)

func doAuth(args []string) int {
	if len(args) == 0 {
		ui.Fail("usage: planner auth login <token> | logout | status | whoami")
		return 2
	}
	switch args[0] {
	case "login":
		return doLogin(args[1:])
	case "logout":
		if err := auth.DeleteToken(); err != nil {
			ui.Fail("logout: " + err.Error())
			return 1
		}
		ui.OK("logged out")
		return 0
	case "status":
		return doStatus()
	case "whoami":
		return doWhoami()
	}
	ui.Fail("auth: unknown action: " + args[0])
	return 2
}

// doLogin stores the token given as argument, or the first line of stdin.
func doLogin(args []string) int {
	token := strings.Join(args, " ")
	if token == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			ui.Fail("login: no token given")
			return 2
		}
		token = line
	}
	ti, err := auth.SetToken(token)
	if err != nil {
		ui.Fail("login: " + err.Error())
		return 1
	}
	msg := "token saved"
	if ti.ExpiresAt != nil {
		msg += ", expires " + ti.ExpiresAt.Local().Format(time.RFC1123)
	}
	ui.OK(msg)
	return 0
}

func doStatus() int {
	ti, err := auth.GetToken()
	if err != nil {
		ui.Fail("status: " + err.Error())
		return 1
	}
	if ti == nil {
		ui.Fail("not logged in")
		ui.Hint("set " + auth.EnvToken + " or run: planner auth login <token>")
		return 1
	}
	lines := []string{"source: " + ti.Source}
	if ti.ExpiresAt != nil {
		lines = append(lines, "expires: "+ti.ExpiresAt.Local().Format(time.RFC1123))
	}
	ui.Panel(ui.Stdout, lines)
	if ti.Expired(time.Now()) {
		ui.Fail("token expired")
		return 1
	}
	return 0
}

func doWhoami() int {
	ti, err := auth.GetToken()
	if err != nil {
		ui.Fail("whoami: " + err.Error())
		return 1
	}
	if ti == nil {
		ui.Fail("not logged in")
		return 1
	}
	c, err := auth.ParseClaims(ti.Token)
	if err != nil {
		ui.Fail("whoami: " + err.Error())
		return 1
	}
	subject := c.Subject
	if subject == "" {
		subject = "(no subject)"
	}
	lines := []string{"subject: " + subject}
	if c.Issuer != "" {
		lines = append(lines, "issuer: "+c.Issuer)
	}
	if c.ExpiresAt != nil {
		lines = append(lines, fmt.Sprintf("expires: %s", c.ExpiresAt.Local().Format(time.RFC1123)))
	}
	ui.Panel(ui.Stdout, lines)
	return 0
}
