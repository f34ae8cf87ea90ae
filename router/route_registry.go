package router

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/techmaster-vietnam/blogkit/response"
)

// AccessType xác định route có cần đăng nhập hay không
type AccessType string

const (
	AccessPublic    AccessType = "PUBLIC"
	AccessProtected AccessType = "PROTECTED"
)

// RouteMetadata lưu thông tin route được khai báo trong code
type RouteMetadata struct {
	Method      string        `json:"method"`
	Path        string        `json:"-"`       // Relative path (để register vào router)
	FullPath    string        `json:"path"`    // Full path bao gồm prefix
	Pattern     string        `json:"pattern"` // FullPath với :param -> *
	Handler     fiber.Handler `json:"-"`
	AccessType  AccessType    `json:"access"`
	Description string        `json:"description,omitempty"`
}

// RouteRegistry quản lý tất cả routes được đăng ký từ code
type RouteRegistry struct {
	routes      []*RouteMetadata
	exactMap    map[string]*RouteMetadata // O(1) lookup: "METHOD|PATH" -> RouteMetadata
	patternList []*RouteMetadata          // Routes có wildcard patterns
	mutex       sync.RWMutex
}

// NewRouteRegistry tạo mới RouteRegistry
func NewRouteRegistry() *RouteRegistry {
	return &RouteRegistry{
		routes:      make([]*RouteMetadata, 0),
		exactMap:    make(map[string]*RouteMetadata),
		patternList: make([]*RouteMetadata, 0),
	}
}

// Register đăng ký một route vào registry
func (rr *RouteRegistry) Register(route *RouteMetadata) {
	rr.mutex.Lock()
	defer rr.mutex.Unlock()

	rr.routes = append(rr.routes, route)

	if strings.Contains(route.Pattern, "*") {
		rr.patternList = append(rr.patternList, route)
	} else {
		key := fmt.Sprintf("%s|%s", route.Method, route.Pattern)
		rr.exactMap[key] = route
	}
}

// GetAllRoutes trả về tất cả routes đã đăng ký
func (rr *RouteRegistry) GetAllRoutes() []*RouteMetadata {
	rr.mutex.RLock()
	defer rr.mutex.RUnlock()

	routes := make([]*RouteMetadata, len(rr.routes))
	copy(routes, rr.routes)
	return routes
}

// FindRoute tìm route theo method và path.
// Exact match được ưu tiên nên /api/blogs/latest không bị /api/blogs/* che.
func (rr *RouteRegistry) FindRoute(method, path string) *RouteMetadata {
	rr.mutex.RLock()
	defer rr.mutex.RUnlock()

	key := fmt.Sprintf("%s|%s", method, path)
	if route, found := rr.exactMap[key]; found {
		return route
	}

	for _, route := range rr.patternList {
		if route.Method == method && matchPath(route.Pattern, path) {
			return route
		}
	}

	return nil
}

// Handler trả về danh sách routes.
// Với ?method=&path= chỉ trả về route khớp (404 nếu không có).
func (rr *RouteRegistry) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		method := strings.ToUpper(c.Query("method"))
		path := c.Query("path")
		if method != "" && path != "" {
			route := rr.FindRoute(method, path)
			if route == nil {
				return fiber.NewError(fiber.StatusNotFound, "Route not found")
			}
			return response.Success(c, fiber.StatusOK, fiber.Map{"route": route}, "Route fetched successfully")
		}

		routes := rr.GetAllRoutes()
		return response.Success(c, fiber.StatusOK, fiber.Map{
			"count":  len(routes),
			"routes": routes,
		}, "Routes fetched successfully")
	}
}

// matchPath kiểm tra path có match với pattern không (hỗ trợ wildcard *)
func matchPath(pattern, path string) bool {
	if pattern == path {
		return true
	}

	// * matches exactly one segment
	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}
