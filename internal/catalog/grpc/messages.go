package grpc

type Product struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Price         string  `json:"price"`
	Stock         int32   `json:"stock"`
	Category      string  `json:"category"`
	Rating        float64 `json:"rating"`
	Description   string  `json:"description"`
	Image         string  `json:"image,omitempty"`
	CreatedAtUnix int64   `json:"created_at_unix"`
	UpdatedAtUnix int64   `json:"updated_at_unix"`
}

type ListProductsRequest struct {
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
	MinPrice string `json:"min_price,omitempty"`
	MaxPrice string `json:"max_price,omitempty"`
}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type GetProductRequest struct {
	Id string `json:"id"`
}

func (r *GetProductRequest) GetId() string {
	if r == nil {
		return ""
	}
	return r.Id
}

type GetProductResponse struct {
	Product *Product `json:"product"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}
