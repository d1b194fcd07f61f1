package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwx-cli/bwx/internal/bw"
	kerrors "github.com/bwx-cli/bwx/internal/errors"
	"github.com/bwx-cli/bwx/internal/picker"
	"github.com/bwx-cli/bwx/internal/session"
	"github.com/bwx-cli/bwx/internal/ui"
	"github.com/bwx-cli/bwx/internal/utils"
)

// currentSession returns a usable session token, or an error telling the
// user how to get one.
func currentSession() (string, error) {
	store, err := session.NewStore(cfg)
	if err != nil {
		return "", err
	}

	token, err := session.Resolve(store, cfg.Session.TTL.Duration, time.Now())
	if err != nil {
		if errors.Is(err, kerrors.ErrSessionNotFound) || errors.Is(err, kerrors.ErrSessionExpired) {
			return "", fmt.Errorf("%w\n%s Run %s to start a session", err,
				ui.Info.Sprint("→"), ui.Code.Sprint("bwx unlock"))
		}
		return "", err
	}

	Logger.Debugf("Resolved session token from %s backend", store.Name())
	return token, nil
}

// vaultClient returns a client authenticated with the current session.
func vaultClient() (*bw.Client, error) {
	token, err := currentSession()
	if err != nil {
		return nil, err
	}
	return bw.New(cfg.Vault.Binary).WithSession(token), nil
}

// resolveItem searches the vault for query and narrows the result to one
// item, running the interactive picker on ties when a terminal is attached.
func resolveItem(client *bw.Client, query string) (*bw.Item, error) {
	Logger.Debugf("Searching vault for %q", query)
	items, err := client.ListItems(query)
	if err != nil {
		return nil, err
	}
	Logger.Debugf("Query %q matched %d item(s)", query, len(items))

	return picker.Resolve(items, query, utils.IsTerminal())
}
