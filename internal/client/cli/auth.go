package cli

import (
	"context"

	"github.com/dmitrijs2005/nutrio/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// arg returns args[i] or prompts for it.
func (a *App) arg(args []string, i int, prompt string) (string, error) {
	if i < len(args) {
		return args[i], nil
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// Signup prompts for an email, a display name and a password and creates the
// account. It does not sign in.
func (a *App) Signup(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}
	name, err := a.arg(args, 1, "Enter name")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.users.Signup(ctx, email, string(password), name); err != nil {
		a.reportError(err)
		return err
	}

	a.println(a.lang.T("success") + ". " + a.lang.T("login") + " to continue.")
	return nil
}

// Login prompts for credentials and signs in. On success the subscription is
// reloaded for the new user.
func (a *App) Login(ctx context.Context, args []string) error {
	email, err := a.arg(args, 0, "Enter email")
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.users.Login(ctx, email, string(password)); err != nil {
		a.reportError(err)
		return err
	}

	a.subs.FetchSubscription(ctx)
	if snap := a.users.Snapshot(); snap.User != nil {
		a.println(a.lang.T("welcome", snap.User.Name))
	}
	return nil
}

// Logout asks for confirmation, ends the session and resets the
// subscription to the guest view. Pass "-y" to skip the question.
func (a *App) Logout(ctx context.Context, args []string) error {
	if !a.isLoggedIn() {
		a.println(a.lang.T("notLoggedIn"))
		return nil
	}
	if ok, err := a.confirm(args, a.lang.T("logoutMessage")); err != nil || !ok {
		return err
	}

	a.users.Logout(ctx)
	if snap := a.users.Snapshot(); snap.Error != "" {
		a.println(a.lang.T("error") + ": " + snap.Error)
		return nil
	}
	a.subs.FetchSubscription(ctx)
	a.println(a.lang.T("success"))
	return nil
}

// confirm asks a yes/no question unless args carries "-y".
func (a *App) confirm(args []string, question string) (bool, error) {
	for _, s := range args {
		if s == "-y" {
			return true, nil
		}
	}
	answer, err := getSimpleText(a.reader, question+" ("+a.lang.T("yes")+"/"+a.lang.T("no")+")", a.out)
	if err != nil {
		return false, err
	}
	return confirmed(answer, a.lang.T("yes")), nil
}

func (a *App) reportError(err error) {
	a.println(a.lang.T("error") + ": " + err.Error())
}
