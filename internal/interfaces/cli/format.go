package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

const dateLayout = "2006-01-02 15:04:05"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeProducts(w io.Writer, products ...*entity.Product) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "sin productos")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOMBRE\tDESCRIPCIÓN\tCANTIDAD\tMÍNIMO\t")
	for _, p := range products {
		mark := ""
		if p.IsLowStock() {
			mark = "BAJO"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%s\n", p.ID, p.Name, p.Description, p.Quantity, p.MinimumThreshold, mark)
	}
	return tw.Flush()
}

func writeMovements(w io.Writer, movements []*entity.Movement) error {
	if len(movements) == 0 {
		_, err := fmt.Fprintln(w, "sin movimientos")
		return err
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFECHA (UTC)\tPRODUCTO\tTIPO\tCANTIDAD\tRESPONSABLE\tMOTIVO")
	for _, m := range movements {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			m.ID, m.Date.UTC().Format(dateLayout), m.ProductName, m.Type, m.Quantity, m.Responsible, m.Reason)
	}
	return tw.Flush()
}
