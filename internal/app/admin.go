package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Karthiknalam/mern-store-frontend/internal/api"
	"github.com/Karthiknalam/mern-store-frontend/internal/domain"
)

const adminPageSize = 5

func (a *App) admin(ctx context.Context, args []string) {
	sess := a.sessions.Get()
	if !sess.IsAuthenticated() {
		a.printf("Please log in to access the admin screens.")
		return
	}
	if !sess.IsAdmin() {
		a.printf("Access denied. Admin privileges required.")
		return
	}
	if len(args) == 0 {
		a.printf("Usage: admin <users|adduser|edituser|deluser|addproduct|editproduct|delproduct|orders|setstatus> ...")
		return
	}

	switch args[0] {
	case "users":
		a.adminUsers(ctx, args[1:])
	case "adduser":
		a.adminAddUser(ctx, args[1:])
	case "edituser":
		a.adminEditUser(ctx, args[1:])
	case "deluser":
		a.adminDeleteUser(ctx, args[1:])
	case "addproduct":
		a.adminAddProduct(ctx, args[1:])
	case "editproduct":
		a.adminEditProduct(ctx, args[1:])
	case "delproduct":
		a.adminDeleteProduct(ctx, args[1:])
	case "orders":
		a.adminOrders(ctx, args[1:])
	case "setstatus":
		a.adminSetStatus(ctx, args[1:])
	default:
		a.printf("Unknown admin command %q", args[0])
	}
}

func (a *App) adminUsers(ctx context.Context, args []string) {
	page := 1
	search := ""
	if len(args) >= 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		}
	}
	if len(args) >= 2 {
		search = strings.Join(args[1:], " ")
	}

	a.printf("Loading...")
	result, err := a.client.ListUsers(ctx, page, adminPageSize, search)
	if err != nil {
		a.fail(err)
		return
	}
	a.lastUsers = result.Users

	if len(result.Users) == 0 {
		a.printf("No users found.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tEMAIL\tROLE")
	for i, u := range result.Users {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\n", i+1, u.FirstName, u.LastName, u.Email, u.Role)
	}
	w.Flush()
	a.printf("Page %d of %d", page, result.Total)
}

func (a *App) adminAddUser(ctx context.Context, args []string) {
	if len(args) != 5 {
		a.printf("Please fill in all fields: admin adduser <first> <last> <email> <password> <role>")
		return
	}

	_, err := a.client.CreateUser(ctx, api.UserUpsert{
		FirstName: args[0],
		LastName:  args[1],
		Email:     args[2],
		Password:  args[3],
		Role:      args[4],
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("User added successfully")
}

func (a *App) adminEditUser(ctx context.Context, args []string) {
	if len(args) < 3 {
		a.printf("Usage: admin edituser <n> <field> <value>")
		return
	}
	i, ok := rowIndex(args[:1], len(a.lastUsers))
	if !ok {
		a.printf("Run 'admin users' first, then refer to a row number.")
		return
	}

	update := api.UserUpsert{}
	value := strings.Join(args[2:], " ")
	switch args[1] {
	case "firstName":
		update.FirstName = value
	case "lastName":
		update.LastName = value
	case "email":
		update.Email = value
	case "password":
		update.Password = value
	case "role":
		update.Role = value
	default:
		a.printf("Unknown field %q", args[1])
		return
	}

	if _, err := a.client.UpdateUser(ctx, a.lastUsers[i].ID, update); err != nil {
		a.fail(err)
		return
	}
	a.printf("User information updated successfully")
}

func (a *App) adminDeleteUser(ctx context.Context, args []string) {
	i, ok := rowIndex(args, len(a.lastUsers))
	if !ok {
		a.printf("Usage: admin deluser <n> (run 'admin users' first)")
		return
	}

	if err := a.client.DeleteUser(ctx, a.lastUsers[i].ID); err != nil {
		a.fail(err)
		return
	}
	a.printf("User Deleted Successfully")
}

func (a *App) adminAddProduct(ctx context.Context, args []string) {
	if len(args) < 2 {
		a.printf("Usage: admin addproduct <name> <price> [description...]")
		return
	}
	price, err := strconv.ParseFloat(args[1], 64)
	if err != nil || price < 0 {
		a.printf("Price must be a non-negative number")
		return
	}

	_, err = a.client.CreateProduct(ctx, domain.Product{
		ProductName: args[0],
		Price:       price,
		Description: strings.Join(args[2:], " "),
	})
	if err != nil {
		a.fail(err)
		return
	}
	a.printf("Product added successfully")
}

func (a *App) adminEditProduct(ctx context.Context, args []string) {
	if len(args) < 3 {
		a.printf("Usage: admin editproduct <n> <field> <value...>")
		return
	}
	i, ok := rowIndex(args[:1], len(a.lastProducts))
	if !ok {
		a.printf("Run 'products' first, then refer to a row number.")
		return
	}

	patch := domain.Product{}
	value := strings.Join(args[2:], " ")
	switch args[1] {
	case "productName":
		patch.ProductName = value
	case "description":
		patch.Description = value
	case "imgUrl":
		patch.ImgURL = value
	case "price":
		price, err := strconv.ParseFloat(value, 64)
		if err != nil || price < 0 {
			a.printf("Price must be a non-negative number")
			return
		}
		patch.Price = price
	default:
		a.printf("Unknown field %q", args[1])
		return
	}

	if _, err := a.client.UpdateProduct(ctx, a.lastProducts[i].ID, patch); err != nil {
		a.fail(err)
		return
	}
	a.printf("Product information updated successfully")
}

func (a *App) adminDeleteProduct(ctx context.Context, args []string) {
	i, ok := rowIndex(args, len(a.lastProducts))
	if !ok {
		a.printf("Usage: admin delproduct <n> (run 'products' first)")
		return
	}

	if err := a.client.DeleteProduct(ctx, a.lastProducts[i].ID); err != nil {
		a.fail(err)
		return
	}
	a.printf("Product Deleted Successfully")
}

func (a *App) adminOrders(ctx context.Context, args []string) {
	page := 1
	var status domain.OrderStatus
	if len(args) >= 1 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			page = n
		} else {
			status = domain.OrderStatus(args[0])
		}
	}
	if len(args) >= 2 {
		status = domain.OrderStatus(args[1])
	}
	if status != "" && !status.Valid() {
		a.printf("Unknown status %q (pending, processing, shipped, delivered, cancelled)", status)
		return
	}

	a.printf("Loading orders...")
	result, err := a.client.ListOrders(ctx, page, adminPageSize, status)
	if err != nil {
		a.fail(err)
		return
	}
	a.lastOrders = result.Orders

	if len(result.Orders) == 0 {
		a.printf("No orders match your current filter.")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tORDER\tCUSTOMER\tSTATUS\tITEMS\tTOTAL")
	for i, o := range result.Orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t$%.2f\n", i+1, o.ID, o.Email, o.Status, len(o.Items), o.OrderValue)
	}
	w.Flush()
	a.printf("Page %d of %d", page, result.Total)
}

func (a *App) adminSetStatus(ctx context.Context, args []string) {
	if len(args) != 2 {
		a.printf("Usage: admin setstatus <n> <status>")
		return
	}
	i, ok := rowIndex(args[:1], len(a.lastOrders))
	if !ok {
		a.printf("Run 'admin orders' first, then refer to a row number.")
		return
	}
	status := domain.OrderStatus(args[1])
	if !status.Valid() {
		a.printf("Unknown status %q (pending, processing, shipped, delivered, cancelled)", status)
		return
	}

	if _, err := a.client.UpdateOrderStatus(ctx, a.lastOrders[i].ID, status); err != nil {
		a.fail(err)
		return
	}
	a.printf("Order status updated")
}
