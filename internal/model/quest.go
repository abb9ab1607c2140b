package model

import "time"

type ActivityHour struct {
	Category string  `json:"category"`
	Hour     float64 `json:"hour"`
}

type Participant struct {
	UserID    string `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Status    bool   `json:"status"`
}

type Quest struct {
	ID           string        `json:"id"`
	QuestName    string        `json:"questName"`
	Description  string        `json:"description,omitempty"`
	ImagePath    string        `json:"imagePath,omitempty"`
	LocationID   string        `json:"locationId"`
	CreatorID    string        `json:"creatorId"`
	TimeStart    time.Time     `json:"timeStart,omitempty"`
	TimeEnd      time.Time     `json:"timeEnd,omitempty"`
	QuestStatus  bool          `json:"questStatus"`
	ActivityHour *ActivityHour `json:"activityHour,omitempty"`
	Participant  []Participant `json:"participant"`
}

type CreateQuestRequest struct {
	LocationID   string        `json:"locationId"`
	QuestName    string        `json:"questName"`
	Description  string        `json:"description"`
	TimeStart    time.Time     `json:"timeStart"`
	TimeEnd      time.Time     `json:"timeEnd"`
	ActivityHour *ActivityHour `json:"activityHour"`
}

type CreateQuestResponse = Quest

type GetQuestRequest struct {
	ID string `json:"id"`
}

type GetQuestResponse = Quest

type GetListQuestRequest struct{}

type GetListQuestResponse []Quest

type UpdateQuestRequest struct {
	ID           string        `json:"id"`
	QuestName    string        `json:"questName"`
	Description  string        `json:"description"`
	TimeStart    time.Time     `json:"timeStart"`
	TimeEnd      time.Time     `json:"timeEnd"`
	ActivityHour *ActivityHour `json:"activityHour"`
}

type UpdateQuestResponse = Quest

type DeleteQuestRequest struct {
	ID string `json:"id"`
}

type DeleteQuestResponse struct {
	Message string `json:"msg"`
}

type GetCreatorQuestsRequest struct{}

type GetCreatorQuestsResponse []Quest

type JoinOrLeaveQuestRequest struct {
	ID string `json:"id"`
}

type JoinOrLeaveQuestResponse = Quest

type GetParticipantsRequest struct {
	ID string `json:"id"`
}

type GetParticipantsResponse struct {
	Participant []Participant `json:"participant"`
}

type CheckUsersRequest struct {
	ID    string   `json:"id"`
	Users []string `json:"users"`
}

type CheckUsersResponse struct {
	Message string `json:"msg"`
}

type UncheckUsersRequest = CheckUsersRequest

type UncheckUsersResponse = CheckUsersResponse

type RemoveUsersRequest struct {
	ID    string   `json:"id"`
	Users []string `json:"users"`
}

type RemoveUsersResponse struct {
	Message string `json:"msg"`
}

type FindQuestRequest struct {
	ID string `json:"id"`
}

type FindQuestResponse struct {
	Quest
	CountParticipant int `json:"countParticipant"`
}

type CompleteQuestRequest struct {
	ID string `json:"id"`
}

type CompleteQuestResponse struct {
	Message string `json:"msg"`
}

type CancelQuestRequest struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type CancelQuestResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type GetCreatorUncompletedQuestsRequest struct{}

type GetCreatorUncompletedQuestsResponse []Quest

type ChangeQuestImageRequest struct {
	ID string `json:"id"`
}

type ChangeQuestImageResponse struct {
	ImagePath string `json:"imagePath"`
}

type RecommendQuestsRequest struct{}

type RecommendQuestsResponse []Quest
