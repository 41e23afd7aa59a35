package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"shelftrack/models"
	"shelftrack/services"
	"shelftrack/validator"
)

// App drives the interactive menu over stdin/stdout.
type App struct {
	books   *services.BookService
	authors *services.AuthorService
	in      *bufio.Scanner
	out     io.Writer
}

func New(books *services.BookService, authors *services.AuthorService, in io.Reader, out io.Writer) *App {
	return &App{
		books:   books,
		authors: authors,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops the main menu until the user exits or input is closed.
// Every error is reported and the loop continues; none is fatal.
func (a *App) Run() error {
	for {
		fmt.Fprint(a.out, "\nMENU\n"+
			"1. Enter book\n"+
			"2. Update book\n"+
			"3. Delete book\n"+
			"4. Search books\n"+
			"5. View details of all books\n"+
			"6. Manage authors\n"+
			"0. Exit\n")

		choice, err := a.readLine("Select one of the options from the menu above (0-6):")
		if err != nil {
			return a.finish(err)
		}

		switch choice {
		case "1":
			err = a.enterBook()
		case "2":
			err = a.updateBook()
		case "3":
			err = a.deleteBook()
		case "4":
			err = a.searchBook()
		case "5":
			err = a.viewDetails()
		case "6":
			err = a.manageAuthors()
		case "0":
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid input. Please enter a number between 0 and 6.")
		}

		if err != nil {
			return a.finish(err)
		}
	}
}

func (a *App) finish(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

// reportError surfaces a service error to the user. Validation and
// not-found errors are recoverable messages; anything else is a storage
// failure that aborts the operation but not the process.
func (a *App) reportError(err error) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintf(a.out, "Invalid input: %s.\n", verrs.Error())
	case errors.Is(err, services.ErrBookNotFound):
		fmt.Fprintln(a.out, "There was no book found with that ID.")
	case errors.Is(err, services.ErrAuthorNotFound):
		fmt.Fprintln(a.out, "There was no author found with that ID.")
	case errors.Is(err, services.ErrAuthorInUse):
		fmt.Fprintln(a.out, "The author still has books in the system. Reassign them first.")
	default:
		slog.Error("operation failed", "error", err)
		fmt.Fprintf(a.out, "The following database error occurred: %v\n", err)
	}
}

// resolveAuthor checks that an author exists and, if not, offers to create
// it inline. Returns the usable author ID and whether to proceed.
func (a *App) resolveAuthor(authorID int64) (int64, bool, error) {
	_, err := a.authors.Get(authorID)
	if err == nil {
		return authorID, true, nil
	}
	if !errors.Is(err, services.ErrAuthorNotFound) {
		a.reportError(err)
		return 0, false, nil
	}

	fmt.Fprintf(a.out, "The author ID %d does not exist.\n", authorID)
	yes, perr := a.promptYesNo("Would you like to add the author to the system? (y/n)")
	if perr != nil {
		return 0, false, perr
	}
	if !yes {
		return 0, false, nil
	}

	author, perr := a.addAuthor()
	if perr != nil {
		return 0, false, perr
	}
	if author == nil {
		return 0, false, nil
	}

	return author.ID, true, nil
}

// addAuthor prompts for author details and creates the row. Returns nil
// (with no error) when creation was rejected.
func (a *App) addAuthor() (*models.Author, error) {
	name, err := a.promptText("Please enter the author's name:")
	if err != nil {
		return nil, err
	}

	country, err := a.readLine("Please enter the author's country (may be left blank):")
	if err != nil {
		return nil, err
	}

	author, aerr := a.authors.Add(models.CreateAuthorRequest{Name: name, Country: country})
	if aerr != nil {
		a.reportError(aerr)
		return nil, nil
	}

	fmt.Fprintf(a.out, "The author %s was added successfully (ID %d).\n", author.Name, author.ID)
	return author, nil
}

func (a *App) enterBook() error {
	title, err := a.promptText("Please enter the title of the book:")
	if err != nil {
		return err
	}

	authorID, err := a.promptID("Please enter the author ID:")
	if err != nil {
		return err
	}

	authorID, ok, err := a.resolveAuthor(authorID)
	if err != nil || !ok {
		return err
	}

	quantity, err := a.promptQuantity("Please enter the quantity of books:")
	if err != nil {
		return err
	}

	book, aerr := a.books.Add(models.CreateBookRequest{
		Title:    title,
		AuthorID: authorID,
		Quantity: quantity,
	})
	if aerr != nil {
		a.reportError(aerr)
		return nil
	}

	fmt.Fprintf(a.out, "The book %s has been added to the database (ID %d).\n", book.Title, book.ID)
	return nil
}

func (a *App) updateBook() error {
	details, lerr := a.books.List()
	if lerr != nil {
		a.reportError(lerr)
		return nil
	}
	if len(details) == 0 {
		fmt.Fprintln(a.out, "There are no books currently.")
		return nil
	}

	fmt.Fprintln(a.out, "\nCurrent Books:")
	a.renderBooks(details)

	bookID, err := a.promptID("Please enter the ID of the book you would like to update:")
	if err != nil {
		return err
	}

	detail, gerr := a.books.Get(bookID)
	if gerr != nil {
		a.reportError(gerr)
		return nil
	}

	fmt.Fprintln(a.out, "\nDetails of the chosen book:")
	a.renderBookDetail(detail)

	for {
		choice, err := a.readLine("\nWould you like to update:\n" +
			" [t] - The title\n" +
			" [q] - The quantity\n" +
			" [a] - The author ID\n" +
			" [an] - The author's name\n" +
			" [ac] - The author's country\n" +
			" [r] - Return to the main menu\n" +
			"Enter your choice:")
		if err != nil {
			return err
		}

		switch choice {
		case "t":
			title, err := a.promptText("Please enter the new title of the book:")
			if err != nil {
				return err
			}
			if _, uerr := a.books.Update(bookID, models.UpdateBookRequest{Title: &title}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The title was successfully updated.")

		case "q":
			quantity, err := a.promptQuantity("Please enter the new quantity:")
			if err != nil {
				return err
			}
			if _, uerr := a.books.Update(bookID, models.UpdateBookRequest{Quantity: &quantity}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The quantity was successfully updated.")

		case "a":
			authorID, err := a.promptID("Please enter the new author ID:")
			if err != nil {
				return err
			}
			authorID, ok, err := a.resolveAuthor(authorID)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			updated, uerr := a.books.Update(bookID, models.UpdateBookRequest{AuthorID: &authorID})
			if uerr != nil {
				a.reportError(uerr)
				continue
			}
			detail.AuthorID = updated.AuthorID
			fmt.Fprintln(a.out, "The author ID has been successfully updated.")

		case "an":
			name, err := a.promptText("Please enter a new value for the author's name:")
			if err != nil {
				return err
			}
			if _, uerr := a.authors.Update(detail.AuthorID, models.UpdateAuthorRequest{Name: &name}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The author's name has been updated successfully.")

		case "ac":
			country, err := a.promptText("Please enter a new country:")
			if err != nil {
				return err
			}
			if _, uerr := a.authors.Update(detail.AuthorID, models.UpdateAuthorRequest{Country: &country}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The country has been successfully updated.")

		case "r":
			return nil

		default:
			fmt.Fprintln(a.out, "Please enter one of the options: 't', 'q', 'a', 'an', 'ac', 'r'.")
		}
	}
}

func (a *App) deleteBook() error {
	details, lerr := a.books.List()
	if lerr != nil {
		a.reportError(lerr)
		return nil
	}
	if len(details) == 0 {
		fmt.Fprintln(a.out, "There are no current books to delete.")
		return nil
	}

	fmt.Fprintln(a.out, "\nBook List:")
	a.renderBooks(details)

	bookID, err := a.promptID("Please enter the ID of the book you would like to delete:")
	if err != nil {
		return err
	}

	if derr := a.books.Delete(bookID); derr != nil {
		a.reportError(derr)
		return nil
	}

	fmt.Fprintf(a.out, "The book with ID %d has been deleted.\n", bookID)
	return nil
}

func (a *App) searchBook() error {
	bookID, err := a.promptID("Please enter the ID of the book you would like to search:")
	if err != nil {
		return err
	}

	detail, gerr := a.books.Get(bookID)
	if gerr != nil {
		a.reportError(gerr)
		return nil
	}

	a.renderBookDetail(detail)
	return nil
}

func (a *App) viewDetails() error {
	details, lerr := a.books.List()
	if lerr != nil {
		a.reportError(lerr)
		return nil
	}
	if len(details) == 0 {
		fmt.Fprintln(a.out, "There are no books currently.")
		return nil
	}

	fmt.Fprintln(a.out, "\nDetails:")
	a.renderBooks(details)
	return nil
}

func (a *App) manageAuthors() error {
	for {
		choice, err := a.readLine("\nAUTHORS\n" +
			" [l] - List authors\n" +
			" [a] - Add author\n" +
			" [u] - Update author\n" +
			" [d] - Delete author\n" +
			" [b] - View an author's books\n" +
			" [r] - Return to the main menu\n" +
			"Enter your choice:")
		if err != nil {
			return err
		}

		switch choice {
		case "l":
			authors, lerr := a.authors.List()
			if lerr != nil {
				a.reportError(lerr)
				continue
			}
			if len(authors) == 0 {
				fmt.Fprintln(a.out, "There are no authors currently.")
				continue
			}
			a.renderAuthors(authors)

		case "a":
			if _, err := a.addAuthor(); err != nil {
				return err
			}

		case "u":
			if err := a.updateAuthor(); err != nil {
				return err
			}

		case "d":
			authorID, err := a.promptID("Please enter the ID of the author you would like to delete:")
			if err != nil {
				return err
			}
			if derr := a.authors.Delete(authorID); derr != nil {
				a.reportError(derr)
				continue
			}
			fmt.Fprintf(a.out, "The author with ID %d has been deleted.\n", authorID)

		case "b":
			authorID, err := a.promptID("Please enter the author ID:")
			if err != nil {
				return err
			}
			details, lerr := a.books.ListByAuthor(authorID)
			if lerr != nil {
				a.reportError(lerr)
				continue
			}
			if len(details) == 0 {
				fmt.Fprintln(a.out, "This author has no books in the system.")
				continue
			}
			a.renderBooks(details)

		case "r":
			return nil

		default:
			fmt.Fprintln(a.out, "Please enter one of the options: 'l', 'a', 'u', 'd', 'b', 'r'.")
		}
	}
}

func (a *App) updateAuthor() error {
	authorID, err := a.promptID("Please enter the ID of the author you would like to update:")
	if err != nil {
		return err
	}

	author, gerr := a.authors.Get(authorID)
	if gerr != nil {
		a.reportError(gerr)
		return nil
	}
	fmt.Fprintf(a.out, "Updating %s (%s).\n", author.Name, author.Country)

	for {
		choice, err := a.readLine("Update [n]ame, [c]ountry, or [r]eturn:")
		if err != nil {
			return err
		}

		switch choice {
		case "n":
			name, err := a.promptText("Please enter the author's new name:")
			if err != nil {
				return err
			}
			if _, uerr := a.authors.Update(authorID, models.UpdateAuthorRequest{Name: &name}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The author's name has been updated successfully.")

		case "c":
			country, err := a.promptText("Please enter the author's new country:")
			if err != nil {
				return err
			}
			if _, uerr := a.authors.Update(authorID, models.UpdateAuthorRequest{Country: &country}); uerr != nil {
				a.reportError(uerr)
				continue
			}
			fmt.Fprintln(a.out, "The country has been successfully updated.")

		case "r":
			return nil

		default:
			fmt.Fprintln(a.out, "Please enter 'n', 'c', or 'r'.")
		}
	}
}
