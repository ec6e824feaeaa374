// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

package internal_entity

import (
	"strconv"
	"time"
)

// Cdr is the subset of cdr.cdr needed to locate a call's media. The table is
// range partitioned by time_start; rows are written by the call-processing
// pipeline and never updated here.
type Cdr struct {
	Id            uint64    `json:"id" gorm:"column:id;type:bigint;primaryKey;<-:false"`
	Uuid          string    `json:"uuid" gorm:"column:uuid;type:uuid;<-:false"`
	TimeStart     time.Time `json:"timeStart" gorm:"column:time_start;type:timestamptz;<-:false"`
	LocalTag      string    `json:"localTag" gorm:"column:local_tag;type:varchar;<-:false"`
	NodeId        *int      `json:"nodeId" gorm:"column:node_id;type:integer;<-:false"`
	PopId         *int      `json:"popId" gorm:"column:pop_id;type:integer;<-:false"`
	DumpLevelId   int       `json:"dumpLevelId" gorm:"column:dump_level_id;type:integer;<-:false"`
	AudioRecorded bool      `json:"audioRecorded" gorm:"column:audio_recorded;type:boolean;<-:false"`
	Duration      *int      `json:"duration" gorm:"column:duration;type:integer;<-:false"`
	CustomerId    *uint64   `json:"customerId" gorm:"column:customer_id;type:bigint;<-:false"`
	CustomerAccId *uint64   `json:"customerAccId" gorm:"column:customer_acc_id;type:bigint;<-:false"`
}

func (Cdr) TableName() string {
	return "cdr.cdr"
}

// HasRecording is true when audio was recorded and the call was answered.
func (c *Cdr) HasRecording() bool {
	return c.AudioRecorded && c.Duration != nil && *c.Duration > 0
}

func (c *Cdr) HasDump() bool {
	return c.DumpLevelId > 0
}

// CdrKey addresses one CDR. Exactly one of Id and Uuid is set. CustomerId
// and AccountIds restrict the lookup to what a customer may see.
type CdrKey struct {
	Id         uint64
	Uuid       string
	CustomerId *uint64
	AccountIds []int64
}

func (k CdrKey) String() string {
	if k.Uuid != "" {
		return k.Uuid
	}
	return strconv.FormatUint(k.Id, 10)
}
