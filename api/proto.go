package api

import "google.golang.org/protobuf/encoding/protowire"

// Номера полей из project_pull_requests.proto.
const (
	listPullRequestsField = 1

	pullRequestKeyField          = 1
	pullRequestTitleField        = 2
	pullRequestBranchField       = 3
	pullRequestBaseField         = 4
	pullRequestStatusField       = 5
	pullRequestIsOrphanField     = 6
	pullRequestAnalysisDateField = 7
	pullRequestURLField          = 8
	pullRequestTargetField       = 9

	statusQualityGateStatusField = 1
)

// MarshalProto кодирует ответ в wire-формат protobuf сообщения ListWsResponse.
func (r ListWsResponse) MarshalProto() []byte {
	var b []byte
	for _, pr := range r.PullRequests {
		b = appendMessage(b, listPullRequestsField, pr.MarshalProto())
	}
	return b
}

// MarshalProto кодирует пул-реквест. Поля со значением nil не пишутся.
func (pr PullRequest) MarshalProto() []byte {
	var b []byte
	b = appendString(b, pullRequestKeyField, pr.Key)
	b = appendString(b, pullRequestTitleField, pr.Title)
	b = appendString(b, pullRequestBranchField, pr.Branch)
	b = appendString(b, pullRequestBaseField, pr.Base)
	if pr.Status != nil {
		b = appendMessage(b, pullRequestStatusField, pr.Status.MarshalProto())
	}
	if pr.IsOrphan != nil {
		b = protowire.AppendTag(b, pullRequestIsOrphanField, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(*pr.IsOrphan))
	}
	b = appendString(b, pullRequestAnalysisDateField, pr.AnalysisDate)
	b = appendString(b, pullRequestURLField, pr.Url)
	b = appendString(b, pullRequestTargetField, pr.Target)
	return b
}

// MarshalProto кодирует статус пул-реквеста.
func (s Status) MarshalProto() []byte {
	return appendString(nil, statusQualityGateStatusField, s.QualityGateStatus)
}

// MarshalProto кодирует ответ в сообщение WorkerCountResponse (ce.proto).
func (r WorkerCountWsResponse) MarshalProto() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.Value))
	b = protowire.AppendTag(b, 2, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(r.CanSetWorkerCount))
	return b
}

func appendString(b []byte, num protowire.Number, value *string) []byte {
	if value == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, *value)
}

func appendMessage(b []byte, num protowire.Number, message []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, message)
}
