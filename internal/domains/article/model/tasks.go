package model

// TaskDeleteImage asks the worker to remove an article's stored image
// object after the row has been deleted.
const TaskDeleteImage = "article:delete_image"

// DeleteImagePayload is the JSON task payload for TaskDeleteImage.
type DeleteImagePayload struct {
	ImagePath string `json:"image_path"`
}
