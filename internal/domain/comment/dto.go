package comment

type CreateCommentDTO struct {
	TicketID uint   `json:"ticketId" binding:"required"`
	Content  string `json:"content" binding:"required,max=5000"`
}

type UpdateCommentDTO struct {
	Content string `json:"content" binding:"required,max=5000"`
}
