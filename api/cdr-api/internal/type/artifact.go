// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.
package internal_type

// ArtifactKind is the kind of media file produced alongside a CDR.
type ArtifactKind string

const (
	// ArtifactRecording is the mp3 call recording.
	ArtifactRecording ArtifactKind = "call_record"
	// ArtifactTrace is the pcap SIP/RTP trace dump.
	ArtifactTrace ArtifactKind = "pcap"
)

func (k ArtifactKind) String() string {
	return string(k)
}

func (k ArtifactKind) Valid() bool {
	return k == ArtifactRecording || k == ArtifactTrace
}
