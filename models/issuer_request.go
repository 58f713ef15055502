// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RequestStatus is the approval state of a university. Values are the
// stringified ledger enum the dashboards filter on.
type RequestStatus string

const (
	RequestPending  RequestStatus = "1"
	RequestApproved RequestStatus = "2"
	RequestRejected RequestStatus = "3"
)

// IssuerRequest is a university's application to become an issuer.
type IssuerRequest struct {
	UniversityName string        `json:"universityName"`
	Address        string        `json:"address"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
