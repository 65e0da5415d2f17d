package app

import (
	"context"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
)

func (a *App) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.printf("Please fill in all fields: login <email> <password>")
		return
	}

	sess, err := a.client.Login(ctx, api.Credentials{Email: args[0], Password: args[1]})
	if err != nil {
		a.printf("Invalid email or password")
		return
	}

	a.sessions.Set(sess)
	a.printf("Welcome back, %s!", sess.Email)
}

func (a *App) register(ctx context.Context, args []string) {
	if len(args) != 4 {
		a.printf("Please fill in all fields: register <first> <last> <email> <password>")
		return
	}

	err := a.client.Register(ctx, api.Registration{
		FirstName: args[0],
		LastName:  args[1],
		Email:     args[2],
		Password:  args[3],
	})
	if err != nil {
		a.printf("Something went wrong. Please try again.")
		return
	}
	a.printf("Account created successfully! You can log in now.")
}

func (a *App) logout() {
	a.sessions.Clear()
	a.cart.Clear()
	a.printf("Logged out.")
}

func (a *App) profile(ctx context.Context, args []string) {
	sess := a.sessions.Get()
	if !sess.IsAuthenticated() {
		a.printf("Please log in to view your profile.")
		return
	}

	if len(args) == 0 {
		u, err := a.client.GetProfile(ctx, sess.ID)
		if err != nil {
			a.printf("Failed to load profile")
			return
		}
		a.printf("%s %s <%s> role=%s", u.FirstName, u.LastName, u.Email, u.Role)
		return
	}

	if len(args) < 3 || args[0] != "set" {
		a.printf("Usage: profile set <firstName|lastName|email|password> <value>")
		return
	}

	update := api.ProfileUpdate{}
	value := args[2]
	switch args[1] {
	case "firstName":
		update.FirstName = value
	case "lastName":
		update.LastName = value
	case "email":
		update.Email = value
	case "password":
		update.Password = value
	default:
		a.printf("Unknown field %q", args[1])
		return
	}

	u, err := a.client.UpdateProfile(ctx, sess.ID, update)
	if err != nil {
		a.printf("Failed to update profile")
		return
	}
	a.printf("Profile updated successfully!")

	// Keep the session in step when the login email changes.
	if update.Email != "" && update.Email != sess.Email {
		sess.Email = u.Email
		a.sessions.Set(sess)
	}
}
