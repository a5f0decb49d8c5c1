package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/glimmersocial/glimmer/pkg/internal/database"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/pemistahl/lingua-go"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func FilterPostWithFuzzySearch(tx *gorm.DB, probe string) *gorm.DB {
	if len(probe) == 0 {
		return tx
	}

	probe = "%" + probe + "%"
	return tx.Where("content ILIKE ?", probe)
}

func FilterPostWithAuthor(tx *gorm.DB, name string) *gorm.DB {
	account, err := GetAccountWithName(name)
	if err != nil {
		return tx.Where("author_id = ?", 0)
	}
	return tx.Where("author_id = ?", account.ID)
}

func PreloadGeneral(tx *gorm.DB) *gorm.DB {
	return tx.Preload("Author")
}

func GetPost(tx *gorm.DB, id uint) (models.Post, error) {
	var item models.Post
	if err := PreloadGeneral(tx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func CountPost(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Model(&models.Post{}).Count(&count).Error; err != nil {
		return count, err
	}

	return count, nil
}

// ListPost returns posts in reverse chronological order. A non-positive take
// means no limit; the reference client always fetches the entire feed.
func ListPost(tx *gorm.DB, take int, offset int) ([]models.Post, error) {
	if take > 500 {
		take = 500
	} else if take <= 0 {
		take = -1
	}

	var items []models.Post
	if err := PreloadGeneral(tx).
		Limit(take).Offset(offset).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func detectLanguage(content string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English,
				lingua.Spanish,
				lingua.French,
				lingua.German,
				lingua.Japanese,
				lingua.Chinese,
			).
			Build()
	})

	if language, ok := detector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}
	return "unknown"
}

// NewPost creates an immutable feed entry for the given author.
func NewPost(author models.Account, content string, imageURL *string) (models.Post, error) {
	if len(strings.TrimSpace(content)) == 0 {
		return models.Post{}, fmt.Errorf("post content cannot be empty")
	}
	if imageURL != nil && len(*imageURL) == 0 {
		imageURL = nil
	}

	item := models.Post{
		Content:  content,
		ImageURL: imageURL,
		Language: detectLanguage(content),
		AuthorID: author.ID,
		Author:   author,
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	log.Debug().Uint("id", item.ID).Uint("author", author.ID).Msg("Created a post.")

	return item, nil
}
