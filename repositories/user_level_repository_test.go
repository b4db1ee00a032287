package repositories

import (
	"testing"

	"portal-app/models"

	"github.com/stretchr/testify/require"
)

func TestListExcludesReservedLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	seedLevel(t, db, "IT Support", ReservedLevelCode)
	seedLevel(t, db, "Admin", "admin")
	inactive := &models.UserLevel{Name: "Lama", Code: "lama", IsActive: false}
	require.NoError(t, db.Create(inactive).Error)

	levels, err := repo.List(false)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	for _, level := range levels {
		require.NotEqual(t, ReservedLevelCode, level.Code)
	}

	active, err := repo.List(true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "admin", active[0].Code)
}

func TestGetProtectedLevelByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	reserved := seedLevel(t, db, "IT Support", ReservedLevelCode)

	_, err := repo.GetByID(reserved.ID)
	require.ErrorIs(t, err, ErrLevelProtected)

	_, err = repo.GetByID(999)
	require.ErrorIs(t, err, ErrLevelNotFound)
}

func TestCreateLevelRejectsReservedCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	err := repo.Create(&models.UserLevel{Name: "Palsu", Code: ReservedLevelCode, IsActive: true})
	require.ErrorIs(t, err, ErrLevelProtected)
}

func TestCreateLevelRejectsDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	seedLevel(t, db, "Admin", "admin")

	err := repo.Create(&models.UserLevel{Name: "Admin Dua", Code: "admin", IsActive: true})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "kode_level", verr.Field)
}

func TestUpdateLevelProtected(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	reserved := seedLevel(t, db, "IT Support", ReservedLevelCode)
	admin := seedLevel(t, db, "Admin", "admin")

	_, err := repo.Update(reserved.ID, &models.UserLevel{Name: "Diubah", Code: "diubah", IsActive: true})
	require.ErrorIs(t, err, ErrLevelProtected)

	// Level biasa juga tidak boleh mengambil kode reserved.
	_, err = repo.Update(admin.ID, &models.UserLevel{Name: "Admin", Code: ReservedLevelCode, IsActive: true})
	require.ErrorIs(t, err, ErrLevelProtected)
}

func TestDeleteLevelInUse(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	staff := seedLevel(t, db, "Staff", "staff")
	user := &models.User{Name: "Budi", Email: "budi@portal.local", Password: "x", UserLevelID: &staff.ID}
	require.NoError(t, db.Create(user).Error)

	require.ErrorIs(t, repo.Delete(staff.ID), ErrLevelInUse)

	// Setelah user pindah level, hapus boleh jalan.
	user.UserLevelID = nil
	require.NoError(t, db.Save(user).Error)
	require.NoError(t, repo.Delete(staff.ID))
}

func TestDeleteLevelClearsBindings(t *testing.T) {
	db := newTestDB(t)
	menuRepo := NewMenuRepository(db)
	repo := NewUserLevelRepository(db)

	staff := seedLevel(t, db, "Staff", "staff")
	menu := &models.Menu{Name: "Aset", Urutan: 1, IsActive: true}
	require.NoError(t, menuRepo.Create(menu, []uint{staff.ID}))
	require.EqualValues(t, 1, bindingCount(t, db))

	require.NoError(t, repo.Delete(staff.ID))
	require.EqualValues(t, 0, bindingCount(t, db))

	// Menu sendiri tidak ikut terhapus.
	_, err := menuRepo.GetByID(menu.ID)
	require.NoError(t, err)
}

func TestDeleteProtectedLevel(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserLevelRepository(db)

	reserved := seedLevel(t, db, "IT Support", ReservedLevelCode)
	require.ErrorIs(t, repo.Delete(reserved.ID), ErrLevelProtected)
	require.ErrorIs(t, repo.Delete(999), ErrLevelNotFound)
}
