package course

type CreateCourseDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateModuleDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       Level  `json:"level"`
	Order       int    `json:"order"`
}

type CreateLessonDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}
