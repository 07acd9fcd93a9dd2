package types

type GetStateResponse struct {
	BroadcastServiceID *string `json:"broadcast_service_id" validate:"required"`
	ECDSAKey           *string `json:"ecdsa_key" validate:"required"`
}

// PatchStatePayload changes the fields that are present.
type PatchStatePayload struct {
	BroadcastServiceID *string `json:"broadcast_service_id,omitempty" validate:"omitempty,min=1"`
	ECDSAKey           *string `json:"ecdsa_key,omitempty" validate:"omitempty,min=1"`
}
