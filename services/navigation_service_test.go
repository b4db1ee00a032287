package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildOrdersByUrutan(t *testing.T) {
	db := newTestDB(t)
	nav := NewNavigationService(db)

	level := createLevel(t, db, "Admin", "admin")
	second := createMenu(t, db, "Buku Tamu", strPtr("bukutamu.index"), strPtr("/bukutamu"), nil, 3, true)
	first := createMenu(t, db, "Dashboard", strPtr("dashboard"), strPtr("/dashboard"), nil, 1, true)
	bindMenus(t, db, level, second, first)

	items, err := nav.Build(&level.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "Dashboard", items[0].Title)
	require.Equal(t, "Buku Tamu", items[1].Title)
}

func TestBuildFiltersChildrenByOwnBinding(t *testing.T) {
	db := newTestDB(t)
	nav := NewNavigationService(db)

	level := createLevel(t, db, "Admin", "admin")
	group := createMenu(t, db, "Master Data", nil, nil, nil, 1, true)
	visible := createMenu(t, db, "Aset", strPtr("asets.index"), strPtr("/asets"), &group.ID, 1, true)
	createMenu(t, db, "Pengguna", strPtr("users.index"), strPtr("/users"), &group.ID, 2, true)

	// Level terikat ke grup dan satu anak; anak lain tidak ikut walau
	// parent-nya terlihat.
	bindMenus(t, db, level, group, visible)

	items, err := nav.Build(&level.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Items, 1)
	require.Equal(t, "Aset", items[0].Items[0].Title)
}

func TestBuildSkipsInactiveMenus(t *testing.T) {
	db := newTestDB(t)
	nav := NewNavigationService(db)

	level := createLevel(t, db, "Admin", "admin")
	group := createMenu(t, db, "Master Data", nil, nil, nil, 1, true)
	inactive := createMenu(t, db, "Aset", strPtr("asets.index"), strPtr("/asets"), &group.ID, 1, false)
	bindMenus(t, db, level, group, inactive)

	items, err := nav.Build(&level.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Empty(t, items[0].Items)
}

func TestBuildKeepsEmptyGroups(t *testing.T) {
	db := newTestDB(t)
	nav := NewNavigationService(db)

	level := createLevel(t, db, "Staff", "staff")
	group := createMenu(t, db, "Master Data", nil, nil, nil, 1, true)
	bindMenus(t, db, level, group)

	items, err := nav.Build(&level.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].Items)
	require.Empty(t, items[0].Items)
}

func TestBuildNilLevelIsEmpty(t *testing.T) {
	db := newTestDB(t)
	nav := NewNavigationService(db)

	createMenu(t, db, "Dashboard", strPtr("dashboard"), strPtr("/dashboard"), nil, 1, true)

	items, err := nav.Build(nil)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}
