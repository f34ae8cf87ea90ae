package service

import (
	"strings"

	"github.com/techmaster-vietnam/blogkit/models"
	"github.com/techmaster-vietnam/blogkit/utils"
)

// SearchQuery là query string thô của GET /api/blogs/search
type SearchQuery struct {
	Title    string `query:"title"`
	Content  string `query:"content"`
	Tags     string `query:"tags"` // comma-separated
	Author   string `query:"author"`
	Category string `query:"category"`
}

// BuildSearchFilter chuẩn hóa query thành BlogFilter.
// Param rỗng (sau khi trim) không tạo ràng buộc; author/category phải là id hợp lệ.
func BuildSearchFilter(q SearchQuery) (models.BlogFilter, error) {
	filter := models.BlogFilter{
		Title:   strings.TrimSpace(q.Title),
		Content: strings.TrimSpace(q.Content),
		Tags:    utils.SplitCSV(q.Tags),
	}

	if raw := strings.TrimSpace(q.Author); raw != "" {
		id, err := utils.ParseID(raw, "author")
		if err != nil {
			return models.BlogFilter{}, err
		}
		filter.AuthorID = &id
	}

	if raw := strings.TrimSpace(q.Category); raw != "" {
		id, err := utils.ParseID(raw, "category")
		if err != nil {
			return models.BlogFilter{}, err
		}
		filter.CategoryID = &id
	}

	return filter, nil
}
