package cli

import (
	"strconv"

	"github.com/olekukonko/tablewriter"

	"shelftrack/models"
)

func (a *App) renderBooks(details []models.BookDetail) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Book ID", "Title", "Author", "Country", "Quantity"})

	for _, d := range details {
		table.Append([]string{
			strconv.FormatInt(d.ID, 10),
			d.Title,
			d.AuthorName,
			d.AuthorCountry,
			strconv.Itoa(d.Quantity),
		})
	}

	table.Render()
}

func (a *App) renderBookDetail(d *models.BookDetail) {
	table := tablewriter.NewWriter(a.out)

	table.Append([]string{"Book ID", strconv.FormatInt(d.ID, 10)})
	table.Append([]string{"Title", d.Title})
	table.Append([]string{"Author ID", strconv.FormatInt(d.AuthorID, 10)})
	table.Append([]string{"Author Name", d.AuthorName})
	table.Append([]string{"Author Country", d.AuthorCountry})
	table.Append([]string{"Quantity", strconv.Itoa(d.Quantity)})

	table.Render()
}

func (a *App) renderAuthors(authors []models.Author) {
	table := tablewriter.NewWriter(a.out)
	table.SetHeader([]string{"Author ID", "Name", "Country"})

	for _, author := range authors {
		table.Append([]string{
			strconv.FormatInt(author.ID, 10),
			author.Name,
			author.Country,
		})
	}

	table.Render()
}
