package tui

import "strings"

type route int

const (
	routePayees route = iota
	routeTransactions
)

var routes = []struct {
	route route
	title string
	key   string
}{
	{routePayees, "Payees", "1"},
	{routeTransactions, "Transactions", "2"},
}

func (r route) title() string {
	for _, item := range routes {
		if item.route == r {
			return item.title
		}
	}
	return ""
}

func (r route) next() route {
	return route((int(r) + 1) % len(routes))
}

func (r route) prev() route {
	return route((int(r) + len(routes) - 1) % len(routes))
}

func renderNavbar(active route) string {
	items := make([]string, 0, len(routes))
	for _, item := range routes {
		label := item.key + " " + item.title
		if item.route == active {
			items = append(items, navActiveStyle.Render(label))
			continue
		}
		items = append(items, navInactiveStyle.Render(label))
	}
	return titleStyle.Render("YNAB Payee Manager") + "  " + strings.Join(items, " ")
}
