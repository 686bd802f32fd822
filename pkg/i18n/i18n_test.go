package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/crm/pkg/i18n"
)

func TestBundle_T(t *testing.T) {
	t.Parallel()

	b, err := i18n.New("en")
	require.NoError(t, err)

	require.Equal(t, "Dashboard", b.T("en", "dashboard"))
	require.Equal(t, "Übersicht", b.T("de", "dashboard"))

	// Unknown language falls back to the default language.
	require.Equal(t, "Dashboard", b.T("fr", "dashboard"))

	// Unknown key falls back to the key itself.
	require.Equal(t, "no_such_key", b.T("en", "no_such_key"))
}

func TestBundle_Supported(t *testing.T) {
	t.Parallel()

	b, err := i18n.New("en")
	require.NoError(t, err)

	require.True(t, b.Supported("en"))
	require.True(t, b.Supported("de"))
	require.False(t, b.Supported("fr"))
	require.False(t, b.Supported(""))

	require.Equal(t, []string{"de", "en"}, b.Languages())
}

func TestNew_UnknownDefault(t *testing.T) {
	t.Parallel()

	_, err := i18n.New("xx")
	require.Error(t, err)
}
