//go:build webkit_cgo

package window

import (
	"context"
	"fmt"
	"os"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/chanomhub/desktop/assets"
	"github.com/chanomhub/desktop/internal/bootstrap"
	"github.com/chanomhub/desktop/internal/logging"
)

// AppID is the application identifier for GTK.
const AppID = "xyz.chanomhub.Desktop"

// Run opens the main window and blocks until the application quits.
// GTK quits the application when its last window closes.
func Run(ctx context.Context, app *bootstrap.App) error {
	log := logging.FromContext(ctx).With().Str("component", "window").Logger()
	cfg := app.Config.Get()

	gtkApp := gtk.NewApplication(AppID, gio.ApplicationFlagsNone)

	app.Lifecycle.SetQuitFunc(func(ctx context.Context) {
		logging.FromContext(ctx).Info().Msg("quitting")
		glib.IdleAdd(func() bool {
			gtkApp.Quit()
			return false
		})
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	gtkApp.ConnectActivate(func() {
		view := webkit.NewWebView()
		settings := view.Settings()
		if cfg.Shell.UserAgent != "" {
			settings.SetUserAgent(cfg.Shell.UserAgent)
		}
		settings.SetEnableDeveloperExtras(cfg.Shell.EnableDevTools)

		if ucm := view.UserContentManager(); ucm != nil {
			ucm.AddScript(webkit.NewUserScript(
				assets.BridgeScript,
				webkit.UserContentInjectTopFrame,
				webkit.UserScriptInjectAtDocumentStart,
				nil,
				nil,
			))
		}

		wv := &webView{view: view}
		shell := NewShell(ctx, wv, app.Router, app.Menu, app.Engine, postToMain)
		wv.id = registerShell(shell)
		if !wv.attach() {
			log.Warn().Str("handler", MessageHandlerName).Msg("script message handler not registered")
		}

		win := gtk.NewApplicationWindow(gtkApp)
		win.SetTitle(cfg.Shell.WindowTitle)
		win.SetDefaultSize(cfg.Shell.WindowWidth, cfg.Shell.WindowHeight)
		win.SetChild(view)
		win.SetShowMenubar(true)
		gtkApp.SetMenubar(buildMenu(gtkApp, shell))

		win.ConnectCloseRequest(func() bool {
			unregisterShell(wv.id)
			return false
		})

		events, unsubscribe := app.Events.Subscribe(64)
		go func() {
			defer unsubscribe()
			shell.Forward(ctx, events)
		}()

		shell.Home()
		win.Present()
		app.Timer.Mark("window")
		log.Info().Str("home", cfg.Shell.HomeURL).Msg("window ready")
	})

	if code := gtkApp.Run(os.Args[:1]); code != 0 {
		return fmt.Errorf("gtk application exited with status %d", code)
	}
	return nil
}

// buildMenu creates the "Menu" submenu with one app action per entry.
func buildMenu(gtkApp *gtk.Application, shell *Shell) *gio.Menu {
	section := gio.NewMenu()
	for i, item := range shell.menu.Items() {
		label := item.Label
		name := fmt.Sprintf("menu-%d", i)

		action := gio.NewSimpleAction(name, nil)
		action.ConnectActivate(func(_ *glib.Variant) {
			shell.Navigate(label)
		})
		gtkApp.AddAction(action)
		section.Append(label, "app."+name)
	}

	bar := gio.NewMenu()
	bar.AppendSubmenu("Menu", section)
	return bar
}

// postToMain schedules fn on the GTK main loop. Idle sources of equal
// priority run in the order they were added.
func postToMain(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
}
