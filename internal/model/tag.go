package model

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"tagName"`
}

type CreateTagRequest struct {
	Name string `json:"tagName"`
}

type CreateTagResponse = Tag

type GetListTagRequest struct{}

type GetListTagResponse []Tag
