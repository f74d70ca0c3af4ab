package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chanomhub/desktop/internal/application/port/gomocks"
	"github.com/chanomhub/desktop/internal/application/port/mocks"
)

type fixedPath string

func (p fixedPath) DownloadPath() string { return string(p) }

func TestBrowseFoldersUseCase_ListDirectories(t *testing.T) {
	fs := mocks.NewMockFileSystem(t)
	uc := NewBrowseFoldersUseCase(fs, gomocks.NewMockFileManager(gomock.NewController(t)), fixedPath("/dl"))

	fs.EXPECT().ListDirectories(mock.Anything, "/dl").Return([]string{"GameA", "GameB"}, nil).Once()

	dirs, err := uc.ListDownloadFolders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"GameA", "GameB"}, dirs)
}

func TestBrowseFoldersUseCase_ListDirectoriesEmptyIsNotNil(t *testing.T) {
	fs := mocks.NewMockFileSystem(t)
	uc := NewBrowseFoldersUseCase(fs, gomocks.NewMockFileManager(gomock.NewController(t)), fixedPath("/dl"))

	fs.EXPECT().ListDirectories(mock.Anything, "/empty").Return(nil, nil).Once()

	dirs, err := uc.ListDirectories(context.Background(), "/empty")
	require.NoError(t, err)
	assert.NotNil(t, dirs)
	assert.Empty(t, dirs)
}

func TestBrowseFoldersUseCase_ListDirectoriesPropagatesErrors(t *testing.T) {
	fs := mocks.NewMockFileSystem(t)
	uc := NewBrowseFoldersUseCase(fs, gomocks.NewMockFileManager(gomock.NewController(t)), fixedPath("/dl"))

	notFound := errors.New("no such file or directory")
	fs.EXPECT().ListDirectories(mock.Anything, "/missing").Return(nil, notFound).Once()

	_, err := uc.ListDirectories(context.Background(), "/missing")
	assert.ErrorIs(t, err, notFound)
}

func TestBrowseFoldersUseCase_OpenFolder(t *testing.T) {
	t.Run("opens existing folder", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		fm := gomocks.NewMockFileManager(gomock.NewController(t))
		uc := NewBrowseFoldersUseCase(fs, fm, fixedPath("/dl"))

		want := filepath.Join("/dl", "GameA")
		fs.EXPECT().IsDirectory(mock.Anything, want).Return(true, nil).Once()
		fm.EXPECT().OpenFolder(gomock.Any(), want).Return(nil).Times(1)

		uc.OpenFolder(context.Background(), "GameA")
	})

	t.Run("missing folder is a no-op", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		fm := gomocks.NewMockFileManager(gomock.NewController(t))
		uc := NewBrowseFoldersUseCase(fs, fm, fixedPath("/dl"))

		fs.EXPECT().IsDirectory(mock.Anything, filepath.Join("/dl", "Nope")).Return(false, nil).Once()

		uc.OpenFolder(context.Background(), "Nope")
	})

	t.Run("traversal stays inside download path", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		fm := gomocks.NewMockFileManager(gomock.NewController(t))
		uc := NewBrowseFoldersUseCase(fs, fm, fixedPath("/dl"))

		fs.EXPECT().IsDirectory(mock.Anything, filepath.Join("/dl", "etc")).Return(false, nil).Once()

		uc.OpenFolder(context.Background(), "../../etc")
	})

	t.Run("file manager failure is swallowed", func(t *testing.T) {
		fs := mocks.NewMockFileSystem(t)
		fm := gomocks.NewMockFileManager(gomock.NewController(t))
		uc := NewBrowseFoldersUseCase(fs, fm, fixedPath("/dl"))

		fs.EXPECT().IsDirectory(mock.Anything, mock.Anything).Return(true, nil).Once()
		fm.EXPECT().OpenFolder(gomock.Any(), gomock.Any()).Return(errors.New("xdg-open not found"))

		assert.NotPanics(t, func() { uc.OpenFolder(context.Background(), "GameA") })
	})
}
