// Package app is the interactive terminal storefront: a read-eval loop of
// screens over the REST client. Every command fetches, renders, or mutates;
// every failure ends in a printed message and a live prompt, never a dead
// process.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
	"github.com/Karthiknalam/mern-store-frontend/internal/cart"
	"github.com/Karthiknalam/mern-store-frontend/internal/catalog"
	"github.com/Karthiknalam/mern-store-frontend/internal/checkout"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
	"github.com/Karthiknalam/mern-store-frontend/internal/session"
)

const productPageSize = 10

type App struct {
	client    *api.Client
	cart      *cart.Cart
	sessions  *session.Store
	submitter *checkout.Submitter
	fetcher   *catalog.Fetcher
	timeout   time.Duration

	in  *bufio.Scanner
	out io.Writer

	// Remembered listings so commands can refer to rows by number.
	page         int
	search       string
	lastProducts []domain.Product
	lastUsers    []domain.User
	lastOrders   []domain.OrderRecord
}

func New(client *api.Client, c *cart.Cart, sessions *session.Store, timeout time.Duration, in io.Reader, out io.Writer) *App {
	return &App{
		client:    client,
		cart:      c,
		sessions:  sessions,
		submitter: checkout.NewSubmitter(client, c, sessions),
		fetcher:   catalog.NewFetcher(client),
		timeout:   timeout,
		in:        bufio.NewScanner(in),
		out:       out,
		page:      1,
	}
}

// Run reads commands until quit, EOF, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	a.printf("Welcome to the store. Type 'help' for commands.")
	if sess := a.sessions.Get(); sess.IsAuthenticated() {
		a.printf("Logged in as %s", sess.Email)
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return a.in.Err()
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		if quit := a.dispatch(ctx, line); quit {
			return nil
		}
	}
}

func (a *App) dispatch(ctx context.Context, line string) (quit bool) {
	args := strings.Fields(line)
	cmd := args[0]
	args = args[1:]

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	switch cmd {
	case "help":
		a.printHelp()
	case "products":
		a.showProducts(ctx, args)
	case "search":
		a.search = strings.Join(args, " ")
		a.page = 1
		a.showProducts(ctx, nil)
	case "add":
		a.addToCart(args)
	case "cart":
		a.showCart()
	case "inc":
		a.changeQty(args, a.cart.Increment)
	case "dec":
		a.changeQty(args, a.cart.Decrement)
	case "rm":
		a.changeQty(args, a.cart.Remove)
	case "checkout":
		a.placeOrder(ctx)
	case "orders":
		a.showOrderHistory(ctx)
	case "login":
		a.login(ctx, args)
	case "register":
		a.register(ctx, args)
	case "logout":
		a.logout()
	case "profile":
		a.profile(ctx, args)
	case "admin":
		a.admin(ctx, args)
	case "quit", "exit":
		return true
	default:
		a.printf("Unknown command %q. Type 'help' for commands.", cmd)
	}
	return false
}

func (a *App) printHelp() {
	a.printf(`Shopping:
  products [page]          browse the catalog
  search <text>            search products by name (empty text clears)
  add <n>                  add row n of the last listing to the cart
  cart                     show the cart
  inc <n> / dec <n>        change quantity of cart row n
  rm <n>                   remove cart row n
  checkout                 place the order
  orders                   your order history

Account:
  login <email> <password>
  register <first> <last> <email> <password>
  logout
  profile                  show your profile
  profile set <field> <value>

Admin:
  admin users [page] [search]
  admin adduser <first> <last> <email> <password> <role>
  admin edituser <n> <field> <value>
  admin deluser <n>
  admin addproduct <name> <price> [description...]
  admin editproduct <n> <field> <value...>
  admin delproduct <n>
  admin orders [page] [status]
  admin setstatus <n> <status>

quit`)
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// fail prints the message for err following the storefront's taxonomy:
// 401 becomes a login or privilege hint, anything else the generic line.
func (a *App) fail(err error) {
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		if a.sessions.Get().IsAuthenticated() {
			a.printf("Access denied. Admin privileges required.")
		} else {
			a.printf("Please log in first.")
		}
	case errors.Is(err, catalog.ErrSuperseded):
		// A newer fetch owns the screen; stay quiet.
	default:
		a.printf("Something went wrong")
	}
}

// rowIndex resolves a 1-based listing row argument.
func rowIndex(args []string, size int) (int, bool) {
	if len(args) != 1 || size == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > size {
		return 0, false
	}
	return n - 1, true
}
