// Package window provides the GTK main window hosting the site.
package window

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/chanomhub/desktop/assets"
	"github.com/chanomhub/desktop/internal/app/messaging"
	"github.com/chanomhub/desktop/internal/application/port"
	"github.com/chanomhub/desktop/internal/domain/entity"
	"github.com/chanomhub/desktop/internal/logging"
)

const (
	// MessageHandlerName is the WebKit script message handler pages post to.
	MessageHandlerName = "chanomhub"

	builtinBase = "chanomhub://app/"
)

// ErrUnavailable is returned by Run in builds without WebKitGTK.
var ErrUnavailable = errors.New("window support not compiled in (build with -tags webkit_cgo)")

// ErrForbiddenOrigin answers commands posted by remote pages.
var ErrForbiddenOrigin = errors.New("commands are only accepted from built-in pages")

// View is what the shell needs from the web view. All methods are called
// on the UI thread.
type View interface {
	EvaluateScript(script string)
	LoadURL(url string)
	LoadHTML(html, baseURI string)
	CurrentURI() string
}

// Menu resolves menu labels to navigation targets.
type Menu interface {
	Items() []entity.MenuItem
	Home() entity.NavigationTarget
	Resolve(ctx context.Context, label string) (entity.NavigationTarget, error)
}

// Shell connects the web view to the command router, the event stream and
// the transfer engine. It holds no toolkit state.
type Shell struct {
	ctx     context.Context
	view    View
	router  *messaging.Router
	menu    Menu
	starter port.TransferStarter
	// post runs fn on the UI thread, in call order.
	post func(fn func())
	log  zerolog.Logger

	// Script messages wait here for the single dispatch worker, so commands
	// run in the order the page posted them.
	mu      sync.Mutex
	queue   []scriptMessage
	pending chan struct{}
}

type scriptMessage struct {
	origin string
	raw    string
}

// NewShell creates a shell. post must schedule fn on the UI thread. The
// dispatch worker stops when ctx ends.
func NewShell(
	ctx context.Context,
	view View,
	router *messaging.Router,
	menu Menu,
	starter port.TransferStarter,
	post func(fn func()),
) *Shell {
	s := &Shell{
		ctx:     ctx,
		view:    view,
		router:  router,
		menu:    menu,
		starter: starter,
		post:    post,
		log:     logging.FromContext(ctx).With().Str("component", "window").Logger(),
		pending: make(chan struct{}, 1),
	}
	go s.dispatchLoop()
	return s
}

// BuiltinURI is the base URI built-in pages are loaded under.
func BuiltinURI(page string) string {
	return builtinBase + page
}

// IsBuiltinURI reports whether uri belongs to a built-in page.
func IsBuiltinURI(uri string) bool {
	return strings.HasPrefix(uri, builtinBase)
}

// Open loads a navigation target.
func (s *Shell) Open(target entity.NavigationTarget) {
	switch target.Kind {
	case entity.PageKindBuiltin:
		html, err := assets.Page(target.Page)
		if err != nil {
			s.log.Error().Err(err).Msg("cannot load built-in page")
			return
		}
		s.view.LoadHTML(html, BuiltinURI(target.Page))
	default:
		s.view.LoadURL(target.URL)
	}
}

// Home loads the home page.
func (s *Shell) Home() {
	s.Open(s.menu.Home())
}

// Navigate handles a menu activation.
func (s *Shell) Navigate(label string) {
	target, err := s.menu.Resolve(s.ctx, label)
	if err != nil {
		s.log.Warn().Err(err).Str("label", label).Msg("menu entry cannot be opened")
		return
	}
	s.Open(target)
}

// HandleScriptMessage queues a message posted by the page. It never blocks
// the UI thread; commands run one at a time in arrival order and the reply
// is posted back.
func (s *Shell) HandleScriptMessage(raw string) {
	msg := scriptMessage{origin: s.view.CurrentURI(), raw: raw}

	s.mu.Lock()
	s.queue = append(s.queue, msg)
	s.mu.Unlock()

	select {
	case s.pending <- struct{}{}:
	default:
	}
}

func (s *Shell) dispatchLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.pending:
		}
		for {
			msg, ok := s.next()
			if !ok {
				break
			}
			s.dispatch(msg)
		}
	}
}

func (s *Shell) next() (scriptMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return scriptMessage{}, false
	}
	msg := s.queue[0]
	s.queue[0] = scriptMessage{}
	s.queue = s.queue[1:]
	return msg, true
}

func (s *Shell) dispatch(msg scriptMessage) {
	var reply []byte
	if IsBuiltinURI(msg.origin) {
		var err error
		if reply, err = s.router.DispatchJSON(s.ctx, []byte(msg.raw)); err != nil {
			s.log.Warn().Err(err).Msg("malformed script message")
			return
		}
	} else {
		var req messaging.Request
		if err := json.Unmarshal([]byte(msg.raw), &req); err != nil {
			return
		}
		s.log.Warn().Str("origin", msg.origin).Str("type", req.Type).Msg("command from remote page refused")
		reply, _ = json.Marshal(messaging.Response{
			RequestID: req.RequestID,
			Type:      req.Type,
			Error:     ErrForbiddenOrigin.Error(),
		})
	}

	script := ResponseScript(reply)
	s.post(func() { s.view.EvaluateScript(script) })
}

// HandleDownload hands a download the page started to the transfer engine.
func (s *Shell) HandleDownload(url, suggestedName string) {
	go func() {
		if _, err := s.starter.Start(s.ctx, url, suggestedName); err != nil {
			s.log.Error().Err(err).Str("url", url).Msg("cannot start download")
		}
	}()
}

// Forward posts every event to the page until events is closed or ctx ends.
func (s *Shell) Forward(ctx context.Context, events <-chan messaging.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			script, err := EventScript(ev)
			if err != nil {
				s.log.Warn().Err(err).Str("event", ev.Name).Msg("cannot encode event")
				continue
			}
			s.post(func() { s.view.EvaluateScript(script) })
		}
	}
}

// ResponseScript wraps an encoded messaging.Response for the bridge.
func ResponseScript(response []byte) string {
	return "window.__chanomhubReceive && window.__chanomhubReceive(" + string(response) + ");"
}

// EventScript encodes a push event for the bridge.
func EventScript(ev messaging.Event) (string, error) {
	data, err := json.Marshal(ev)
	if err != nil {
		return "", err
	}
	return "window.__chanomhubEmit && window.__chanomhubEmit(" + string(data) + ");", nil
}
