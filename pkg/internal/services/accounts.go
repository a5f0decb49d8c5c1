package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/glimmersocial/glimmer/pkg/internal/cache"
	"github.com/glimmersocial/glimmer/pkg/internal/database"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

// GetAccountWithName resolves a username to an account. Lookups are cached
// because the feed join and DM routing hit this on every request.
func GetAccountWithName(name string) (models.Account, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	ctx := context.Background()

	cacheKey := fmt.Sprintf("account-query#%s", name)
	if hit, err := marshal.Get(ctx, cacheKey, new(models.Account)); err == nil {
		return *hit.(*models.Account), nil
	}

	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by name: %v", err)
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		account,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"account-query", fmt.Sprintf("account#%d", account.ID)}),
	)

	return account, nil
}

func FlushAccountCache(name string) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	_ = marshal.Delete(context.Background(), fmt.Sprintf("account-query#%s", name))
}

func ListAccounts() ([]models.Account, error) {
	var accounts []models.Account
	if err := database.C.Order("name ASC").Find(&accounts).Error; err != nil {
		return accounts, err
	}
	return accounts, nil
}

// SignInAnonymous looks the device up and creates an account for it on first
// contact. Repeated sign-ins from the same device return the same account, so
// the call doubles as session restore.
func SignInAnonymous(deviceID, name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("device_id = ?", deviceID).First(&account).Error; err == nil {
		return account, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return account, fmt.Errorf("unable to look up device: %v", err)
	}

	if len(name) == 0 {
		return account, fmt.Errorf("username is required on first sign-in")
	}

	var count int64
	if err := database.C.Model(&models.Account{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return account, fmt.Errorf("unable to count existing accounts: %v", err)
	}
	if count > 0 {
		return account, fmt.Errorf("username %s is already taken", name)
	}

	account = models.Account{
		Name:     name,
		DeviceID: deviceID,
	}
	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	log.Info().Uint("id", account.ID).Str("name", account.Name).Msg("New account signed up.")

	return account, nil
}

// EditAccount upserts the mutable profile fields. Username is fixed after
// sign-up; only bio and header image can change.
func EditAccount(account models.Account, bio string, headerURL *string) (models.Account, error) {
	account.Bio = bio
	account.HeaderURL = headerURL

	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	FlushAccountCache(account.Name)

	return account, nil
}
