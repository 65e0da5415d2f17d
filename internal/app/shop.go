package app

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
)

func (a *App) showProducts(ctx context.Context, args []string) {
	if len(args) == 1 {
		if n, err := strconv.Atoi(args[0]); err == nil && n >= 1 {
			a.page = n
		}
	}

	a.printf("Loading...")
	page, err := a.fetcher.Fetch(ctx, a.page, productPageSize, a.search)
	if err != nil {
		a.fail(err)
		return
	}
	a.lastProducts = page.Products

	if len(page.Products) == 0 {
		a.printf("No products found.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tPRICE\tIN CART\tDESCRIPTION")
	for i, p := range page.Products {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t%s\n", i+1, p.ProductName, p.Price, a.cart.Qty(p.ID), p.Description)
	}
	w.Flush()
	a.printf("Page %d of %d", a.page, page.Total)
}

func (a *App) addToCart(args []string) {
	i, ok := rowIndex(args, len(a.lastProducts))
	if !ok {
		a.printf("Usage: add <n> (run 'products' first)")
		return
	}

	p := a.lastProducts[i]
	a.cart.Add(p)
	a.printf("Added %s to cart (%d in cart)", p.ProductName, a.cart.Qty(p.ID))
}

func (a *App) showCart() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		a.printf("🛒 Your cart is empty")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPRODUCT\tPRICE\tQTY\tTOTAL")
	for i, l := range lines {
		fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t$%.2f\n", i+1, l.ProductName, l.Price, l.Qty, l.LineTotal())
	}
	w.Flush()
	a.printf("Subtotal: $%.2f", a.cart.Subtotal())
}

// changeQty applies op to the product behind cart row n.
func (a *App) changeQty(args []string, op func(id string)) {
	lines := a.cart.Lines()
	i, ok := rowIndex(args, len(lines))
	if !ok {
		a.printf("Usage: inc|dec|rm <n> (run 'cart' first)")
		return
	}

	op(lines[i].ID)
	a.showCart()
}

func (a *App) placeOrder(ctx context.Context) {
	if a.cart.Len() == 0 {
		a.printf("Your cart is empty!")
		return
	}
	if !a.sessions.Get().IsAuthenticated() {
		a.printf("Please log in to place an order.")
		return
	}

	a.printf("Placing order...")
	rec, err := a.submitter.Submit(ctx)
	if err != nil {
		a.printf("Failed to place order. Please try again.")
		return
	}

	a.printf("Order placed successfully! Order %s, total $%.2f.", rec.ID, rec.OrderValue)
	a.showOrderHistory(ctx)
}

func (a *App) showOrderHistory(ctx context.Context) {
	sess := a.sessions.Get()
	if !sess.IsAuthenticated() {
		a.printf("Please log in to view your orders.")
		return
	}

	a.printf("Loading orders...")
	orders, err := a.client.OrdersByEmail(ctx, sess.Email)
	if err != nil {
		a.printf("Failed to load orders")
		return
	}
	if len(orders) == 0 {
		a.printf("You haven't placed any orders yet.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tSTATUS\tITEMS\tTOTAL")
	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%d\t$%.2f\n", o.ID, o.Status, len(o.Items), o.OrderValue)
	}
	w.Flush()
}
