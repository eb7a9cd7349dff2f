package handlers

import (
	"strconv"

	"github.com/iudanet/scraperadmin/internal/models"
	"github.com/iudanet/scraperadmin/pkg/api"
)

// DownloadURL is the client-relative URL of a download's content.
func DownloadURL(id int64) string {
	return "/api/v1/downloads/" + strconv.FormatInt(id, 10)
}

func toAPIUser(u *models.User) api.User {
	return api.User{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt,
	}
}

func toAPIReport(r *models.Report) api.Report {
	return api.Report{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      api.ReportStatus(r.Status),
		FileURL:     r.FileURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toAPIDownload(d *models.Download) api.DownloadItem {
	return api.DownloadItem{
		ID:            d.ID,
		Filename:      d.Filename,
		FileType:      d.ContentType,
		FileSize:      d.FileSize,
		CreatedAt:     d.CreatedAt,
		DownloadCount: d.DownloadCount,
		URL:           DownloadURL(d.ID),
	}
}
