package fetch

import "github.com/abelbrown/bookfinder/internal/catalog"

// volumesResponse matches GET /volumes.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

// volume matches a single volume resource, GET /volumes/{id}.
type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string     `json:"title"`
	Authors       []string   `json:"authors"`
	Publisher     string     `json:"publisher"`
	PublishedDate string     `json:"publishedDate"`
	PageCount     int        `json:"pageCount"`
	Description   string     `json:"description"`
	ImageLinks    imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

func (v volume) entry() catalog.Entry {
	info := v.VolumeInfo
	return catalog.Entry{
		ID:            v.ID,
		Title:         info.Title,
		Authors:       info.Authors,
		Publisher:     info.Publisher,
		PublishedDate: info.PublishedDate,
		PageCount:     info.PageCount,
		Thumbnail:     info.ImageLinks.Thumbnail,
		Description:   info.Description,
	}
}
