package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MrEthical07/gamewatch/api"
	"github.com/MrEthical07/gamewatch/view"
)

func table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func price(g api.Game) string {
	if g.Free() {
		return "Grátis"
	}
	if g.Discounted() {
		return fmt.Sprintf("R$ %s (-%d%%, era R$ %s)",
			view.FormatPrice(g.DiscountPrice), g.DiscountPercent, view.FormatPrice(g.InitialPrice))
	}
	return "R$ " + view.FormatPrice(g.InitialPrice)
}

func printGames(w io.Writer, games []api.Game) error {
	tw := table(w)
	fmt.Fprintln(tw, "ID\tTITLE\tPLATFORM\tPRICE")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.Identifier, g.Title, g.Platform.Label(), price(g))
	}
	return tw.Flush()
}

func printReview(w io.Writer, r *api.Review) {
	origin := "admin"
	if r.AIGenerated {
		origin = "ai"
	}
	fmt.Fprintf(w, "%s (%s, %s", r.ID, origin, view.FormatDate(r.CreatedAt))
	if r.Edited() {
		fmt.Fprintf(w, ", editada em %s", view.FormatDate(r.UpdatedAt))
	}
	fmt.Fprintf(w, ")\n\n%s\n", r.Content)
}
