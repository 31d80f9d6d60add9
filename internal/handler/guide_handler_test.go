package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mwasawell/internal/db"
)

func guideRouter(api *API) *gin.Engine {
	r := gin.New()
	r.GET("/api/guide-sections/", api.GetGuideSections)
	r.GET("/admin/api/guide-sections", api.AdminListGuideSections)
	r.PUT("/admin/api/guide-sections/:id", api.AdminUpdateGuideSection)
	r.DELETE("/admin/api/guide-sections/:id", api.AdminDeleteGuideSection)
	return r
}

type guideSectionsResponse struct {
	Success  bool               `json:"success"`
	Sections []guideSectionView `json:"sections"`
	Count    int                `json:"count"`
}

func getGuideSections(t *testing.T, r http.Handler) guideSectionsResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/guide-sections/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp guideSectionsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestGetGuideSectionsAlwaysReturnsThree(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()
	r := guideRouter(api)

	resp := getGuideSections(t, r)
	if !resp.Success {
		t.Fatal("expected success true")
	}
	if resp.Count != 3 || len(resp.Sections) != 3 {
		t.Fatalf("expected 3 sections, got count=%d len=%d", resp.Count, len(resp.Sections))
	}

	wantTypes := []string{db.SectionTypeVision, db.SectionTypeMission, db.SectionTypeCoreValues}
	for i, sectionType := range wantTypes {
		if resp.Sections[i].SectionType != sectionType {
			t.Fatalf("position %d: expected %s, got %s", i, sectionType, resp.Sections[i].SectionType)
		}
	}
}

func TestAdminUpdateGuideSection(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()
	r := guideRouter(api)

	resp := getGuideSections(t, r)
	vision := resp.Sections[0]

	payload, _ := json.Marshal(guideSectionPayload{
		Title:    "Updated Vision",
		Content:  "New content",
		ImageURL: vision.ImageURL,
		IsActive: true,
		Order:    1,
	})
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/admin/api/guide-sections/%d", vision.ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	refreshed := getGuideSections(t, r)
	if refreshed.Sections[0].Title != "Updated Vision" {
		t.Fatalf("expected updated title, got %q", refreshed.Sections[0].Title)
	}
}

func TestAdminUpdateGuideSectionRejectsEmptyTitle(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()
	r := guideRouter(api)

	resp := getGuideSections(t, r)
	payload, _ := json.Marshal(guideSectionPayload{Title: "", Content: "x"})
	req := httptest.NewRequest(http.MethodPut,
		fmt.Sprintf("/admin/api/guide-sections/%d", resp.Sections[0].ID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAdminDeleteGuideSectionThenPublicReadRestoresIt(t *testing.T) {
	api, _, cleanup := setupTestAPI(t)
	defer cleanup()
	r := guideRouter(api)

	resp := getGuideSections(t, r)
	mission := resp.Sections[1]

	req := httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/admin/api/guide-sections/%d", mission.ID), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	refreshed := getGuideSections(t, r)
	if refreshed.Count != 3 {
		t.Fatalf("expected deleted section restored, got %d", refreshed.Count)
	}
	if refreshed.Sections[1].SectionType != db.SectionTypeMission {
		t.Fatalf("expected mission restored, got %s", refreshed.Sections[1].SectionType)
	}
	if refreshed.Sections[1].ID == mission.ID {
		t.Fatal("expected a fresh row after delete")
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/api/guide-sections/9999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown section, got %d", w.Code)
	}
}
