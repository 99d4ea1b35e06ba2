package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/fatih/camelcase"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/billcraft/billcraft/internal/domain"
)

// GitLedger implements domain.InvoiceArchive with a git-tracked directory:
// one flat text file per customer, one commit per archived invoice. The
// repository is initialized lazily on first use.
type GitLedger struct {
	path string
}

// New creates a GitLedger rooted at path.
func New(path string) *GitLedger {
	return &GitLedger{path: path}
}

// Archive writes the rendered invoice into the ledger and commits it.
// Re-archiving an unchanged invoice still records a commit.
func (l *GitLedger) Archive(inv domain.Invoice, rendered string) error {
	repo, err := l.openOrInit()
	if err != nil {
		return err
	}

	name := Slug(inv.Customer) + "_invoice.txt"
	if err := os.WriteFile(filepath.Join(l.path, name), []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing ledger entry: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("opening ledger worktree: %w", err)
	}
	if _, err := wt.Add(name); err != nil {
		return fmt.Errorf("staging %s: %w", name, err)
	}

	msg := fmt.Sprintf("invoice: %s (%s)", inv.Customer, domain.FormatAmount(inv.Amount))
	_, err = wt.Commit(msg, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author: &object.Signature{
			Name:  "billcraft",
			Email: "ledger@billcraft.local",
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("committing ledger entry: %w", err)
	}
	return nil
}

func (l *GitLedger) openOrInit() (*git.Repository, error) {
	repo, err := git.PlainOpen(l.path)
	if err == nil {
		return repo, nil
	}
	if !errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("opening ledger repo: %w", err)
	}

	if err := os.MkdirAll(l.path, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger dir: %w", err)
	}
	repo, err = git.PlainInit(l.path, false)
	if err != nil {
		return nil, fmt.Errorf("initializing ledger repo: %w", err)
	}
	return repo, nil
}

// Slug converts a customer name into a lower_snake filename token:
// "MegaCorp Ltd." -> "mega_corp_ltd". Camel-case words are split, anything
// that is not a letter or digit is dropped.
func Slug(customer string) string {
	var words []string
	for _, field := range strings.Fields(customer) {
		for _, w := range camelcase.Split(field) {
			w = strings.Map(keepAlnum, w)
			if w != "" {
				words = append(words, strings.ToLower(w))
			}
		}
	}
	if len(words) == 0 {
		return "customer"
	}
	return strings.Join(words, "_")
}

func keepAlnum(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return r
	}
	return -1
}
