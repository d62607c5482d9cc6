package controllers

import (
	"github.com/eprocurement-ocds/revision/modules/revision/domain/amendment"
	"github.com/eprocurement-ocds/revision/modules/revision/presentation/dto"
)

func amendmentCreateParams(request dto.CreateAmendmentRequest) (amendment.CreateParams, error) {
	return amendment.NewCreateParams(
		request.OperationType,
		request.StartDate,
		request.Owner,
		request.Cpid,
		request.Ocid,
		request.ID,
		request.Amendment.ToRaw(),
	)
}

func amendmentGetIDsParams(request dto.GetAmendmentIDsRequest) (amendment.GetIDsParams, error) {
	return amendment.NewGetIDsParams(
		request.Cpid,
		request.Ocid,
		request.Status,
		request.Type,
		request.RelatesTo,
		request.RelatedItems,
	)
}

func amendmentDataValidationParams(request dto.DataValidationRequest) (amendment.DataValidationParams, error) {
	rawAmendments := make([]amendment.RawAmendment, 0, len(*request.Amendments))
	for _, a := range *request.Amendments {
		rawAmendments = append(rawAmendments, a.ToRaw())
	}
	return amendment.NewDataValidationParams(
		request.Cpid,
		request.Ocid,
		request.OperationType,
		rawAmendments,
	)
}
