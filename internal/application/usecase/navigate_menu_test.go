package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chanomhub/desktop/internal/domain/entity"
)

func defaultMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Label: "Downloads", Kind: entity.PageKindBuiltin, Target: entity.PageDownloads},
		{Label: "Profile", Kind: entity.PageKindURL, Target: "setting/"},
		{Label: "Home", Kind: entity.PageKindURL, Target: "/"},
		{Label: "All Game", Kind: entity.PageKindBuiltin, Target: entity.PageLibrary},
		{Label: "Setting", Kind: entity.PageKindBuiltin, Target: entity.PageSettings},
	}
}

func TestNavigateMenuUseCase_Resolve(t *testing.T) {
	uc, err := NewNavigateMenuUseCase("https://chanomhub.xyz/", defaultMenu())
	require.NoError(t, err)

	tests := []struct {
		label string
		want  entity.NavigationTarget
	}{
		{label: "Downloads", want: entity.NavigationTarget{Kind: entity.PageKindBuiltin, Page: entity.PageDownloads}},
		{label: "profile", want: entity.NavigationTarget{Kind: entity.PageKindURL, URL: "https://chanomhub.xyz/setting/"}},
		{label: "Home", want: entity.NavigationTarget{Kind: entity.PageKindURL, URL: "https://chanomhub.xyz/"}},
		{label: "All Game", want: entity.NavigationTarget{Kind: entity.PageKindBuiltin, Page: entity.PageLibrary}},
		{label: "Setting", want: entity.NavigationTarget{Kind: entity.PageKindBuiltin, Page: entity.PageSettings}},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := uc.Resolve(context.Background(), tt.label)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNavigateMenuUseCase_Errors(t *testing.T) {
	_, err := NewNavigateMenuUseCase("not a url", nil)
	assert.Error(t, err)

	uc, err := NewNavigateMenuUseCase("https://chanomhub.xyz/", []entity.MenuItem{
		{Label: "Broken", Kind: entity.PageKindBuiltin, Target: "nowhere"},
	})
	require.NoError(t, err)

	_, err = uc.Resolve(context.Background(), "Broken")
	assert.Error(t, err)

	_, err = uc.Resolve(context.Background(), "Missing")
	assert.Error(t, err)
}

func TestNavigateMenuUseCase_ItemsIsACopy(t *testing.T) {
	uc, err := NewNavigateMenuUseCase("https://chanomhub.xyz/", defaultMenu())
	require.NoError(t, err)

	items := uc.Items()
	items[0].Label = "changed"
	assert.Equal(t, "Downloads", uc.Items()[0].Label)
	assert.Equal(t, "https://chanomhub.xyz/", uc.Home().URL)
}
