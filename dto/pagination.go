package dto

// PaginationPostDTO is a concrete swagger-friendly type for paginated posts response
// swagger:model PaginationPostDTO
type PaginationPostDTO struct {
	Data       []PostDTO `json:"data"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	Total      int       `json:"total"`
	TotalPages int       `json:"total_pages"`
}

// CategoryGroupDTO is one category bucket of the grouped public listing
// swagger:model CategoryGroupDTO
type CategoryGroupDTO struct {
	Category string    `json:"category"`
	Posts    []PostDTO `json:"posts"`
}

// OverviewDTO summarizes an author's dashboard
// swagger:model OverviewDTO
type OverviewDTO struct {
	Total      int      `json:"total"`
	Published  int      `json:"published"`
	Drafts     int      `json:"drafts"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}
