// Package views projects stored orphanages into the JSON shape served to clients.
package views

import (
	"net/url"
	"strings"

	"happy/internal/models/db_models"
	"happy/internal/models/response_models"
)

// ImageURL maps a stored file name to the URL clients download it from.
func ImageURL(baseURL, path string) string {
	u, err := url.JoinPath(baseURL, path)
	if err != nil {
		return strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(path)
	}
	return u
}

func RenderImage(image db_models.Image, baseURL string) response_models.Image {
	return response_models.Image{
		ID:  image.ID,
		URL: ImageURL(baseURL, image.Path),
	}
}

func RenderOrphanage(orphanage db_models.Orphanage, baseURL string) response_models.Orphanage {
	images := make([]response_models.Image, 0, len(orphanage.Images))
	for _, image := range orphanage.Images {
		images = append(images, RenderImage(image, baseURL))
	}

	return response_models.Orphanage{
		ID:             orphanage.ID,
		Name:           orphanage.Name,
		Latitude:       orphanage.Latitude.InexactFloat64(),
		Longitude:      orphanage.Longitude.InexactFloat64(),
		About:          orphanage.About,
		Instructions:   orphanage.Instructions,
		OpeningHours:   orphanage.OpeningHours,
		OpenOnWeekends: orphanage.OpenOnWeekends,
		Images:         images,
	}
}

func RenderOrphanages(orphanages []db_models.Orphanage, baseURL string) []response_models.Orphanage {
	out := make([]response_models.Orphanage, 0, len(orphanages))
	for _, orphanage := range orphanages {
		out = append(out, RenderOrphanage(orphanage, baseURL))
	}
	return out
}
