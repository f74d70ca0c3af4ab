package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/logging"
)

// NavigateMenuUseCase resolves menu entries to what the window should load.
type NavigateMenuUseCase struct {
	items   []entity.MenuItem
	homeURL *url.URL
}

// NewNavigateMenuUseCase validates the menu against the home URL.
// Relative URL targets are resolved against homeURL.
func NewNavigateMenuUseCase(homeURL string, items []entity.MenuItem) (*NavigateMenuUseCase, error) {
	home, err := url.Parse(homeURL)
	if err != nil || home.Scheme == "" || home.Host == "" {
		return nil, fmt.Errorf("invalid home url %q", homeURL)
	}
	return &NavigateMenuUseCase{items: items, homeURL: home}, nil
}

// Items returns the menu entries in display order.
func (uc *NavigateMenuUseCase) Items() []entity.MenuItem {
	out := make([]entity.MenuItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Home returns the target for the home page.
func (uc *NavigateMenuUseCase) Home() entity.NavigationTarget {
	return entity.NavigationTarget{Kind: entity.PageKindURL, URL: uc.homeURL.String()}
}

// Resolve returns the navigation target for the menu entry with the label.
func (uc *NavigateMenuUseCase) Resolve(ctx context.Context, label string) (entity.NavigationTarget, error) {
	for _, item := range uc.items {
		if !strings.EqualFold(item.Label, label) {
			continue
		}
		target, err := uc.resolveItem(item)
		if err == nil {
			logging.FromContext(ctx).Debug().
				Str("label", item.Label).
				Str("kind", string(target.Kind)).
				Msg("menu navigation")
		}
		return target, err
	}
	return entity.NavigationTarget{}, fmt.Errorf("unknown menu entry %q", label)
}

func (uc *NavigateMenuUseCase) resolveItem(item entity.MenuItem) (entity.NavigationTarget, error) {
	switch item.Kind {
	case entity.PageKindBuiltin:
		switch item.Target {
		case entity.PageDownloads, entity.PageLibrary, entity.PageSettings:
			return entity.NavigationTarget{Kind: entity.PageKindBuiltin, Page: item.Target}, nil
		default:
			return entity.NavigationTarget{}, fmt.Errorf("unknown built-in page %q", item.Target)
		}
	case entity.PageKindURL:
		ref, err := url.Parse(item.Target)
		if err != nil {
			return entity.NavigationTarget{}, fmt.Errorf("menu entry %q: %w", item.Label, err)
		}
		return entity.NavigationTarget{Kind: entity.PageKindURL, URL: uc.homeURL.ResolveReference(ref).String()}, nil
	default:
		return entity.NavigationTarget{}, fmt.Errorf("menu entry %q: unknown kind %q", item.Label, item.Kind)
	}
}
