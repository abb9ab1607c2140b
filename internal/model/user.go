package model

type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	StudentCode string `json:"studentCode,omitempty"`
}

type CreateUserRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	StudentCode string `json:"studentCode"`
}

type CreateUserResponse = User

type GetListUserRequest struct{}

type GetListUserResponse []User

// BucketCredit is one (hour, count) pair of the activity transcript.
type BucketCredit struct {
	Hour  float64 `json:"hour"`
	Count uint64  `json:"count"`
}

type ActivityTranscript struct {
	University  BucketCredit            `json:"university"`
	Empowerment map[string]BucketCredit `json:"empowerment"`
	Society     BucketCredit            `json:"society"`
}

type Notification struct {
	ID      string `json:"id"`
	QuestID string `json:"questId"`
	Message string `json:"message"`
}

type GetUserInfoRequest struct{}

type GetUserInfoResponse struct {
	User
	JoinedQuest        []Quest            `json:"joinedQuest"`
	Notifications      []Notification     `json:"notifications"`
	ActivityTranscript ActivityTranscript `json:"activityTranscript"`
}
