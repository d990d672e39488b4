package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"contacthub/contact"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// ContactRepository implements contact.Repository over a single DynamoDB
// table keyed by the contact id. Listing scans the table and sorts in
// memory; the data set is a single user's address book.
type ContactRepository struct {
	client *dynamodb.Client
	table  string
}

type contactItem struct {
	ID         string    `dynamodbav:"id"`
	Name       string    `dynamodbav:"name"`
	Email      string    `dynamodbav:"email"`
	Phone      string    `dynamodbav:"phone"`
	Company    string    `dynamodbav:"company"`
	Category   string    `dynamodbav:"category"`
	Avatar     string    `dynamodbav:"avatar"`
	IsFavorite bool      `dynamodbav:"is_favorite"`
	CreatedAt  time.Time `dynamodbav:"created_at"`
}

func NewContactRepository(client *dynamodb.Client, table string) *ContactRepository {
	return &ContactRepository{
		client: client,
		table:  table,
	}
}

func (r *ContactRepository) AllContacts(ctx context.Context) ([]contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return nil, err
	}

	var contacts []contact.Contact
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName: &r.table,
	})
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("dynamodb: scan contacts: %w", err)
		}

		var items []contactItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, fmt.Errorf("dynamodb: unmarshal contacts: %w", err)
		}
		for _, item := range items {
			contacts = append(contacts, item.toDomain())
		}
	}

	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}

func (r *ContactRepository) CreateContact(ctx context.Context, f contact.Fields) (contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return contact.Contact{}, err
	}

	item := contactItem{
		ID:         uuid.NewString(),
		Name:       f.Name,
		Email:      f.Email,
		Phone:      f.Phone,
		Company:    f.Company,
		Category:   string(f.Category),
		Avatar:     f.Avatar,
		IsFavorite: f.IsFavorite,
		CreatedAt:  time.Now().UTC(),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: marshal contact: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.table,
		Item:      av,
	})
	if err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: put contact: %w", err)
	}

	return item.toDomain(), nil
}

func (r *ContactRepository) UpdateContact(ctx context.Context, id string, f contact.Fields) (contact.Contact, error) {
	return r.updateItem(ctx, id,
		"SET #n = :name, email = :email, phone = :phone, company = :company, category = :category, avatar = :avatar, is_favorite = :favorite",
		map[string]string{"#n": "name"},
		map[string]types.AttributeValue{
			":name":     &types.AttributeValueMemberS{Value: f.Name},
			":email":    &types.AttributeValueMemberS{Value: f.Email},
			":phone":    &types.AttributeValueMemberS{Value: f.Phone},
			":company":  &types.AttributeValueMemberS{Value: f.Company},
			":category": &types.AttributeValueMemberS{Value: string(f.Category)},
			":avatar":   &types.AttributeValueMemberS{Value: f.Avatar},
			":favorite": &types.AttributeValueMemberBOOL{Value: f.IsFavorite},
		},
	)
}

func (r *ContactRepository) SetFavorite(ctx context.Context, id string, favorite bool) (contact.Contact, error) {
	return r.updateItem(ctx, id,
		"SET is_favorite = :favorite",
		nil,
		map[string]types.AttributeValue{
			":favorite": &types.AttributeValueMemberBOOL{Value: favorite},
		},
	)
}

func (r *ContactRepository) DeleteContact(ctx context.Context, id string) error {
	if err := validateTable(r.table); err != nil {
		return err
	}

	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           &r.table,
		Key:                 contactKey(id),
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return contact.ErrNotFound
		}
		return fmt.Errorf("dynamodb: delete contact: %w", err)
	}

	return nil
}

// updateItem runs a conditional update against an existing contact and
// returns the row as stored after the write.
func (r *ContactRepository) updateItem(ctx context.Context, id, expr string, names map[string]string, values map[string]types.AttributeValue) (contact.Contact, error) {
	if err := validateTable(r.table); err != nil {
		return contact.Contact{}, err
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &r.table,
		Key:                       contactKey(id),
		UpdateExpression:          aws.String(expr),
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if len(names) > 0 {
		input.ExpressionAttributeNames = names
	}

	out, err := r.client.UpdateItem(ctx, input)
	if err != nil {
		if isConditionalCheckFailed(err) {
			return contact.Contact{}, contact.ErrNotFound
		}
		return contact.Contact{}, fmt.Errorf("dynamodb: update contact: %w", err)
	}

	var item contactItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return contact.Contact{}, fmt.Errorf("dynamodb: unmarshal contact: %w", err)
	}
	return item.toDomain(), nil
}

func contactKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalCheckFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

func (item contactItem) toDomain() contact.Contact {
	return contact.Contact{
		ID:         item.ID,
		Name:       item.Name,
		Email:      item.Email,
		Phone:      item.Phone,
		Company:    item.Company,
		Category:   contact.Category(item.Category),
		Avatar:     item.Avatar,
		IsFavorite: item.IsFavorite,
		CreatedAt:  item.CreatedAt,
	}
}
