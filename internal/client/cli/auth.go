package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/chatline/internal/client/auth"
	"github.com/dmitrijs2005/chatline/internal/client/upload"
	"github.com/dmitrijs2005/chatline/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignIn prompts for credentials and authenticates. On success the session
// is already persisted by the submitter; the app switches to the chat
// surface. Failures print one generic message and leave the user free to
// retry. The password bytes are wiped before returning.
func (a *App) SignIn(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.signIn(ctx, auth.SignInForm{Email: email, Password: string(password)})
}

// Guest runs the sign-in flow with the demo credentials pre-filled.
func (a *App) Guest(ctx context.Context) error {
	fmt.Println("Signing in as guest...")
	return a.signIn(ctx, auth.SignInForm{Email: "abc@gmail.com", Password: "123456"})
}

func (a *App) signIn(ctx context.Context, form auth.SignInForm) error {
	sess, err := a.submitter.SignIn(ctx, form)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	a.session = sess
	fmt.Println("Login successful!")
	a.openChat(ctx)
	return nil
}

// SignUp prompts for the registration fields, uploads the profile picture,
// and asks the authority to create the account. Selection-time problems
// (missing file, unsupported type) are reported immediately; the flow
// continues so the user sees the full validation outcome, exactly once, at
// submission. On success the user stays on the authentication surface and
// signs in explicitly. Password bytes are wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	picPath, err := getSimpleText(a.reader, "Path to profile picture", os.Stdout)
	if err != nil {
		return err
	}
	a.selectPicture(ctx, picPath)

	form := auth.SignUpForm{
		Name:            name,
		Email:           email,
		Password:        string(password),
		PasswordConfirm: string(confirm),
	}

	if _, err := a.submitter.SignUp(ctx, form); err != nil {
		fmt.Println(err.Error())
		return err
	}

	fmt.Println("Account created! Please log in.")
	return nil
}

// selectPicture starts the background upload for the chosen file. A new
// choice supersedes an in-flight one; the submitter later waits for the
// current attempt to resolve before submitting.
func (a *App) selectPicture(ctx context.Context, path string) {
	if path == "" {
		fmt.Println(upload.ErrMissingAsset.Error())
		return
	}

	asset, err := upload.FromFile(path)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := a.uploader.Select(ctx, asset); err != nil {
		fmt.Println(err.Error())
	}
}

// WhoAmI prints the signed-in profile.
func (a *App) WhoAmI(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s>\n", a.session.Name, a.session.Email)
	if a.session.ProfileImage != "" {
		fmt.Printf("profile picture: %s\n", a.session.ProfileImage)
	}
	return nil
}

// Logout clears the persisted session and returns the user to the
// authentication surface.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.session = nil
	a.submitter.Reset()
	fmt.Println("Logged out")
	return nil
}
