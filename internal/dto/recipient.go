package dto

type RecipientCreate struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     *int64 `json:"number"`
	Complement string `json:"complement"`
	State      string `json:"state"`
	City       string `json:"city"`
	ZipCode    *int64 `json:"zip_code"`
}

type Recipient struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Street     string `json:"street"`
	Number     int64  `json:"number"`
	Complement string `json:"complement"`
	State      string `json:"state"`
	City       string `json:"city"`
	ZipCode    int64  `json:"zip_code"`
}
