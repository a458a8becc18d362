package helpers

import (
	"net/http"

	"github.com/gabrielborzinocontato-debug/SITEBAUTY/app/utils/breadcrumb"
	"github.com/gorilla/csrf"
)

func GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "SITEBAUTY"
	}

	if cartCountVal := r.Context().Value(CartCountKey); cartCountVal != nil {
		if count, ok := cartCountVal.(int); ok {
			pageSpecificData["CartCount"] = count
		} else {
			pageSpecificData["CartCount"] = 0
		}
	} else {
		pageSpecificData["CartCount"] = 0
	}

	userID := GetUserIDFromContext(r.Context())
	pageSpecificData["UserID"] = userID
	pageSpecificData["IsLoggedIn"] = userID != ""

	if _, exists := pageSpecificData["Breadcrumbs"]; !exists {
		pageSpecificData["Breadcrumbs"] = []breadcrumb.Breadcrumb{}
	}

	pageSpecificData[csrf.TemplateTag] = csrf.TemplateField(r)

	return pageSpecificData
}
