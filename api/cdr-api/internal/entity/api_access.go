// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_entity

import "github.com/lib/pq"

// ApiAccess is a customer API login. Flags are read on every request.
type ApiAccess struct {
	Id                   uint64        `json:"id" gorm:"column:id;type:bigint;primaryKey;<-:false"`
	Login                string        `json:"login" gorm:"column:login;type:varchar;<-:false"`
	CustomerId           uint64        `json:"customerId" gorm:"column:customer_id;type:bigint;<-:false"`
	AccountIds           pq.Int64Array `json:"accountIds" gorm:"column:account_ids;type:bigint[];<-:false"`
	AllowListenRecording bool          `json:"allowListenRecording" gorm:"column:allow_listen_recording;type:boolean;<-:false"`
}

func (ApiAccess) TableName() string {
	return "sys.api_access"
}
