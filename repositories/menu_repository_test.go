package repositories

import (
	"testing"

	"portal-app/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserLevel{}, &models.User{}, &models.Menu{}))
	return db
}

func seedLevel(t *testing.T, db *gorm.DB, name, code string) *models.UserLevel {
	t.Helper()
	level := &models.UserLevel{Name: name, Code: code, IsActive: true}
	require.NoError(t, db.Create(level).Error)
	return level
}

func bindingCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table("menu_user_level").Count(&count).Error)
	return count
}

func TestCreateMenuWithLevels(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	admin := seedLevel(t, db, "Admin", "admin")
	staff := seedLevel(t, db, "Staff", "staff")

	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(menu, []uint{admin.ID, staff.ID}))

	got, err := repo.GetByID(menu.ID)
	require.NoError(t, err)
	require.Len(t, got.UserLevels, 2)
}

func TestReplaceMenuLevelsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	admin := seedLevel(t, db, "Admin", "admin")
	staff := seedLevel(t, db, "Staff", "staff")

	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(menu, []uint{admin.ID, staff.ID}))

	// Set yang sama dua kali: tidak boleh menggandakan baris binding.
	require.NoError(t, repo.ReplaceMenuLevels(menu.ID, []uint{admin.ID, staff.ID}))
	require.EqualValues(t, 2, bindingCount(t, db))

	// Mengecilkan set tidak meninggalkan residu.
	require.NoError(t, repo.ReplaceMenuLevels(menu.ID, []uint{admin.ID}))
	require.EqualValues(t, 1, bindingCount(t, db))

	// Set kosong membersihkan semuanya.
	require.NoError(t, repo.ReplaceMenuLevels(menu.ID, nil))
	require.EqualValues(t, 0, bindingCount(t, db))
}

func TestReplaceMenuLevelsUnknownLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(menu, nil))

	err := repo.ReplaceMenuLevels(menu.ID, []uint{999})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "user_levels", verr.Field)
}

func TestReplaceLevelMenus(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	admin := seedLevel(t, db, "Admin", "admin")
	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(menu, nil))

	require.NoError(t, repo.ReplaceLevelMenus(admin.ID, []uint{menu.ID}))
	require.EqualValues(t, 1, bindingCount(t, db))

	require.NoError(t, repo.ReplaceLevelMenus(admin.ID, nil))
	require.EqualValues(t, 0, bindingCount(t, db))

	require.ErrorIs(t, repo.ReplaceLevelMenus(999, []uint{menu.ID}), ErrLevelNotFound)
}

func TestDeleteMenuCascades(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	admin := seedLevel(t, db, "Admin", "admin")

	parent := &models.Menu{Name: "Master Data", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(parent, []uint{admin.ID}))

	child := &models.Menu{Name: "Aset", ParentID: &parent.ID, Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(child, []uint{admin.ID}))

	require.NoError(t, repo.Delete(parent.ID))

	var menus int64
	require.NoError(t, db.Model(&models.Menu{}).Count(&menus).Error)
	require.EqualValues(t, 0, menus)
	require.EqualValues(t, 0, bindingCount(t, db))
}

func TestDeleteMenuNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	require.ErrorIs(t, repo.Delete(42), ErrMenuNotFound)
}

func TestUpdateMenuRejectsSelfParent(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(menu, nil))

	input := &models.Menu{Name: "Aset", ParentID: &menu.ID, Urutan: 1, IsActive: true}
	_, err := repo.Update(menu.ID, input, nil)
	require.ErrorIs(t, err, ErrMenuCycle)
}

func TestUpdateMenuRejectsDeepNesting(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	parent := &models.Menu{Name: "Master Data", Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(parent, nil))

	child := &models.Menu{Name: "Aset", ParentID: &parent.ID, Urutan: 1, IsActive: true}
	require.NoError(t, repo.Create(child, nil))

	other := &models.Menu{Name: "Laporan", Urutan: 2, IsActive: true}
	require.NoError(t, repo.Create(other, nil))

	// Anak tidak boleh jadi parent: pohon akan bertingkat tiga.
	input := &models.Menu{Name: "Laporan", ParentID: &child.ID, Urutan: 2, IsActive: true}
	_, err := repo.Update(other.ID, input, nil)
	require.ErrorIs(t, err, ErrMenuTooDeep)

	// Node yang punya anak juga tidak boleh diturunkan.
	input = &models.Menu{Name: "Master Data", ParentID: &other.ID, Urutan: 1, IsActive: true}
	_, err = repo.Update(parent.ID, input, nil)
	require.ErrorIs(t, err, ErrMenuTooDeep)
}

func TestCreateMenuValidation(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	var verr *ValidationError

	err := repo.Create(&models.Menu{Name: "  ", Urutan: 1, IsActive: true}, nil)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "nama_menu", verr.Field)

	err = repo.Create(&models.Menu{Name: "Aset", IsActive: true}, nil)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "urutan", verr.Field)

	missing := uint(999)
	err = repo.Create(&models.Menu{Name: "Aset", ParentID: &missing, Urutan: 1, IsActive: true}, nil)
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "parent_id", verr.Field)
}

func TestListRootsOrdered(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)

	require.NoError(t, repo.Create(&models.Menu{Name: "Buku Tamu", Urutan: 3, IsActive: true}, nil))
	require.NoError(t, repo.Create(&models.Menu{Name: "Dashboard", Urutan: 1, IsActive: true}, nil))
	require.NoError(t, repo.Create(&models.Menu{Name: "Master Data", Urutan: 2, IsActive: true}, nil))

	roots, err := repo.ListRoots()
	require.NoError(t, err)
	require.Len(t, roots, 3)
	require.Equal(t, "Dashboard", roots[0].Name)
	require.Equal(t, "Master Data", roots[1].Name)
	require.Equal(t, "Buku Tamu", roots[2].Name)
}
