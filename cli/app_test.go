package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelftrack/database"
	"shelftrack/models"
	"shelftrack/services"
	"shelftrack/validator"
)

func newTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "cli-test-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	return database.NewRepository(db)
}

func newTestApp(t *testing.T, input string, repo *database.Repository) (*App, *bytes.Buffer) {
	t.Helper()

	v := validator.New()
	books := services.NewBookService(repo, repo, v)
	authors := services.NewAuthorService(repo, v)

	out := &bytes.Buffer{}
	return New(books, authors, strings.NewReader(input), out), out
}

func TestApp_Exit(t *testing.T) {
	app, out := newTestApp(t, "0\n", newTestRepo(t))

	err := app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestApp_ClosedInputExitsCleanly(t *testing.T) {
	app, _ := newTestApp(t, "", newTestRepo(t))

	err := app.Run()
	require.NoError(t, err)
}

func TestApp_EnterBook(t *testing.T) {
	repo := newTestRepo(t)

	authorID, err := repo.CreateAuthor(&models.Author{Name: "Jane Austen", Country: "UK"})
	require.NoError(t, err)

	input := strings.Join([]string{
		"1",    // enter book
		"Emma", // title
		strconv.FormatInt(authorID, 10),
		"5", // quantity
		"0", // exit
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err = app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "has been added to the database")

	details, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Emma", details[0].Title)
	assert.Equal(t, "Jane Austen", details[0].AuthorName)
	assert.Equal(t, "UK", details[0].AuthorCountry)
	assert.Equal(t, 5, details[0].Quantity)
}

func TestApp_EnterBook_CreatesAuthorInline(t *testing.T) {
	repo := newTestRepo(t)

	input := strings.Join([]string{
		"1",           // enter book
		"Emma",        // title
		"999",         // unknown author ID
		"y",           // add the author
		"Jane Austen", // author name
		"UK",          // author country
		"5",           // quantity
		"0",           // exit
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err := app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "does not exist")
	assert.Contains(t, out.String(), "was added successfully")
	assert.Contains(t, out.String(), "has been added to the database")

	details, err := repo.ListBooks()
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Jane Austen", details[0].AuthorName)
}

func TestApp_EnterBook_DeclineAuthorReturnsToMenu(t *testing.T) {
	repo := newTestRepo(t)

	input := strings.Join([]string{
		"1",
		"Emma",
		"999",
		"n", // decline adding the author
		"0",
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err := app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "does not exist")

	details, err := repo.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, details)
}

func TestApp_SearchMissingBook(t *testing.T) {
	app, out := newTestApp(t, "4\n12345\n0\n", newTestRepo(t))

	err := app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "There was no book found with that ID.")
}

func TestApp_PromptsReprompt(t *testing.T) {
	// Invalid menu option, then non-numeric and negative IDs during search
	input := strings.Join([]string{
		"9",     // invalid menu option
		"4",     // search
		"abc",   // not a number
		"-3",    // not positive
		"12345", // valid but absent
		"0",
	}, "\n") + "\n"

	app, out := newTestApp(t, input, newTestRepo(t))

	err := app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid input. Please enter a number between 0 and 6.")
	assert.Contains(t, out.String(), "Invalid input. Please enter a positive number.")
	assert.Contains(t, out.String(), "There was no book found with that ID.")
}

func TestApp_DeleteBook(t *testing.T) {
	repo := newTestRepo(t)

	authorID, err := repo.CreateAuthor(&models.Author{Name: "Jane Austen", Country: "UK"})
	require.NoError(t, err)
	bookID, err := repo.CreateBook(&models.Book{Title: "Emma", AuthorID: authorID, Quantity: 5})
	require.NoError(t, err)

	input := strings.Join([]string{
		"3",
		strconv.FormatInt(bookID, 10),
		"0",
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err = app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "has been deleted")

	detail, err := repo.GetBook(bookID)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestApp_DeleteReferencedAuthorBlocked(t *testing.T) {
	repo := newTestRepo(t)

	authorID, err := repo.CreateAuthor(&models.Author{Name: "Jane Austen", Country: "UK"})
	require.NoError(t, err)
	_, err = repo.CreateBook(&models.Book{Title: "Emma", AuthorID: authorID, Quantity: 5})
	require.NoError(t, err)

	input := strings.Join([]string{
		"6", // manage authors
		"d",
		strconv.FormatInt(authorID, 10),
		"r",
		"0",
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err = app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The author still has books in the system.")

	author, err := repo.GetAuthor(authorID)
	require.NoError(t, err)
	assert.NotNil(t, author)
}

func TestApp_UpdateBookQuantity(t *testing.T) {
	repo := newTestRepo(t)

	authorID, err := repo.CreateAuthor(&models.Author{Name: "Jane Austen", Country: "UK"})
	require.NoError(t, err)
	bookID, err := repo.CreateBook(&models.Book{Title: "Emma", AuthorID: authorID, Quantity: 5})
	require.NoError(t, err)

	input := strings.Join([]string{
		"2", // update book
		strconv.FormatInt(bookID, 10),
		"q",
		"12",
		"r",
		"0",
	}, "\n") + "\n"

	app, out := newTestApp(t, input, repo)

	err = app.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "The quantity was successfully updated.")

	detail, err := repo.GetBook(bookID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, 12, detail.Quantity)
	assert.Equal(t, "Emma", detail.Title)
}
