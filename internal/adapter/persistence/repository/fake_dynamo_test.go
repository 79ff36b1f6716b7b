package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records the last request of each kind and replays canned output.
type fakeDynamo struct {
	getIn    *dynamodb.GetItemInput
	putIn    *dynamodb.PutItemInput
	updateIn *dynamodb.UpdateItemInput
	queryIns []*dynamodb.QueryInput
	scanIns  []*dynamodb.ScanInput

	getOut     *dynamodb.GetItemOutput
	updateOut  *dynamodb.UpdateItemOutput
	queryPages []*dynamodb.QueryOutput
	scanPages  []*dynamodb.ScanOutput
	err        error
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	if f.err != nil {
		return nil, f.err
	}
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, nil
	}
	return f.getOut, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	if f.err != nil {
		return nil, f.err
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updateIn = in
	if f.err != nil {
		return nil, f.err
	}
	return f.updateOut, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIns = append(f.queryIns, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.queryPages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.queryPages[0]
	f.queryPages = f.queryPages[1:]
	return page, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.scanIns = append(f.scanIns, in)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.scanPages) == 0 {
		return &dynamodb.ScanOutput{}, nil
	}
	page := f.scanPages[0]
	f.scanPages = f.scanPages[1:]
	return page, nil
}
