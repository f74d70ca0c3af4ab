package messaging

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

// Command types accepted from the window.
const (
	CmdGetFolders      = "get-folders"
	CmdOpenFolder      = "open-folder"
	CmdGetDownloads    = "get-downloads"
	CmdPauseDownload   = "pause-download"
	CmdResumeDownload  = "resume-download"
	CmdCancelDownload  = "cancel-download"
	CmdGetDownloadPath = "get-download-path"
	CmdSetDownloadPath = "set-download-path"
	CmdInstallUpdate   = "install-update"
)

// Downloads is the part of the download tracker the window controls.
type Downloads interface {
	List() []entity.Download
	Pause(ctx context.Context, id string)
	Resume(ctx context.Context, id string)
	Cancel(ctx context.Context, id string)
	DownloadPath() string
	SetDownloadPath(path string)
}

// Folders lists and opens folders under the download path.
type Folders interface {
	ListDownloadFolders(ctx context.Context) ([]string, error)
	OpenFolder(ctx context.Context, folder string)
}

// Installer quits and applies a staged update.
type Installer interface {
	Execute(ctx context.Context) error
}

// Deps holds what the command handlers need. Installer may be nil when
// self-update is disabled.
type Deps struct {
	Downloads Downloads
	Folders   Folders
	Installer Installer
}

// RegisterAll registers every command handler with router.
func RegisterAll(router *Router, deps Deps) error {
	if deps.Downloads == nil || deps.Folders == nil {
		return errors.New("downloads and folders are required")
	}

	handlers := map[string]Handler{
		CmdGetFolders: HandlerFunc(func(ctx context.Context, _ json.RawMessage) (any, error) {
			return deps.Folders.ListDownloadFolders(ctx)
		}),
		CmdOpenFolder: HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
			folder, err := decodeString(payload)
			if err != nil {
				return nil, err
			}
			deps.Folders.OpenFolder(ctx, folder)
			return nil, nil
		}),
		CmdGetDownloads: HandlerFunc(func(context.Context, json.RawMessage) (any, error) {
			return deps.Downloads.List(), nil
		}),
		CmdPauseDownload:  idCommand(deps.Downloads.Pause),
		CmdResumeDownload: idCommand(deps.Downloads.Resume),
		CmdCancelDownload: idCommand(deps.Downloads.Cancel),
		CmdGetDownloadPath: HandlerFunc(func(context.Context, json.RawMessage) (any, error) {
			return deps.Downloads.DownloadPath(), nil
		}),
		CmdSetDownloadPath: HandlerFunc(func(_ context.Context, payload json.RawMessage) (any, error) {
			path, err := decodeString(payload)
			if err != nil {
				return nil, err
			}
			deps.Downloads.SetDownloadPath(path)
			return nil, nil
		}),
	}
	if deps.Installer != nil {
		handlers[CmdInstallUpdate] = HandlerFunc(func(ctx context.Context, _ json.RawMessage) (any, error) {
			return nil, deps.Installer.Execute(ctx)
		})
	}

	for msgType, h := range handlers {
		if err := router.Register(msgType, h); err != nil {
			return err
		}
	}
	return nil
}

// idCommand wraps a tracker control keyed by download id.
func idCommand(control func(ctx context.Context, id string)) Handler {
	return HandlerFunc(func(ctx context.Context, payload json.RawMessage) (any, error) {
		id, err := decodeString(payload)
		if err != nil {
			return nil, err
		}
		control(ctx, id)
		return nil, nil
	})
}
