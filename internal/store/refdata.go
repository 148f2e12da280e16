package store

import (
	"strings"
	"time"

	"newsdesk/internal/models"
	"newsdesk/internal/utils"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	refTopicsKey  = "ref:topics"
	refUserPrefix = "ref:user:"
	refTTL        = time.Minute
)

// RefData answers "does this topic/username exist" from live store
// queries behind a short TTL cache. Topic slugs match case-insensitively
// and resolve to their canonical spelling; usernames match exactly.
type RefData struct {
	db    *gorm.DB
	cache *utils.Cache
}

func NewRefData(gdb *gorm.DB) *RefData {
	cache, err := utils.NewCache(500)
	if err != nil {
		log.Fatalf("Failed to create reference cache: %v", err)
	}
	return &RefData{db: gdb, cache: cache}
}

func (r *RefData) topicSlugs() ([]string, error) {
	if cached := r.cache.Get(refTopicsKey); cached != nil {
		if slugs, ok := cached.([]string); ok {
			return slugs, nil
		}
	}

	var slugs []string
	if err := r.db.Model(&models.Topic{}).Pluck("slug", &slugs).Error; err != nil {
		return nil, err
	}
	r.cache.Set(refTopicsKey, slugs, refTTL)
	return slugs, nil
}

// ResolveTopic reports whether slug names a known topic, returning the
// canonical spelling on a hit.
func (r *RefData) ResolveTopic(slug string) (string, bool, error) {
	slugs, err := r.topicSlugs()
	if err != nil {
		return "", false, err
	}
	for _, s := range slugs {
		if strings.EqualFold(s, slug) {
			return s, true, nil
		}
	}
	return "", false, nil
}

func (r *RefData) UserExists(username string) (bool, error) {
	key := refUserPrefix + username
	if cached := r.cache.Get(key); cached != nil {
		if exists, ok := cached.(bool); ok && exists {
			return true, nil
		}
	}

	var count int64
	if err := r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	exists := count > 0
	if exists {
		// Only positive hits are cached; a user created moments ago
		// must not stay invisible for a full TTL.
		r.cache.Set(key, true, refTTL)
	}
	return exists, nil
}

// InvalidateTopics drops the cached slug list after a topic write.
func (r *RefData) InvalidateTopics() {
	r.cache.Delete(refTopicsKey)
}
