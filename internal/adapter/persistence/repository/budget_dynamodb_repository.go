package repository

import (
	"context"
	"errors"

	"orcafacil/internal/domain/entities"
	"orcafacil/internal/money"
	"orcafacil/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type clientItem struct {
	Name    string `dynamodbav:"name"`
	Email   string `dynamodbav:"email"`
	Phone   string `dynamodbav:"phone"`
	Address string `dynamodbav:"address"`
	City    string `dynamodbav:"city"`
	ZipCode string `dynamodbav:"zip_code"`
}

type lineItemItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description"`
	Quantity    int    `dynamodbav:"quantity"`
	UnitPrice   int64  `dynamodbav:"unit_price"`
}

type budgetItem struct {
	ID        string         `dynamodbav:"id"`
	Client    clientItem     `dynamodbav:"client"`
	Items     []lineItemItem `dynamodbav:"items"`
	Template  string         `dynamodbav:"template"`
	Notes     string         `dynamodbav:"notes"`
	CreatedAt string         `dynamodbav:"created_at"`
	UpdatedAt string         `dynamodbav:"updated_at,omitempty"`
	Total     int64          `dynamodbav:"total"`
	PDFFileID string         `dynamodbav:"pdf_file_id,omitempty"`
}

// BudgetDynamoRepository persists Budget entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Budgets are stored as one item each, with the client record and the line
// item list as nested attributes and all amounts in integer cents.

type BudgetDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBudgetRepository = (*BudgetDynamoRepository)(nil)

func NewBudgetDynamoRepository(ddb *dynamodb.Client, tableName string) *BudgetDynamoRepository {
	return &BudgetDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BudgetDynamoRepository) List(ctx context.Context) ([]entities.Budget, error) {
	var budgets []entities.Budget

	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []budgetItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			budgets = append(budgets, fromBudgetItem(it))
		}
	}
	return budgets, nil
}

func (r *BudgetDynamoRepository) Create(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) GetByID(ctx context.Context, id string) (entities.Budget, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Budget{}, err
	}
	if len(out.Item) == 0 {
		return entities.Budget{}, nil
	}

	var it budgetItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Budget{}, err
	}
	return fromBudgetItem(it), nil
}

// Update is a full-record replace. The condition keeps it from resurrecting
// a deleted budget; there is no version check, so the last writer wins.
func (r *BudgetDynamoRepository) Update(ctx context.Context, b entities.Budget) (entities.Budget, error) {
	av, err := attributevalue.MarshalMap(toBudgetItem(b))
	if err != nil {
		return entities.Budget{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Budget{}, nil
		}
		return entities.Budget{}, err
	}
	return b, nil
}

func (r *BudgetDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBudgetItem(b entities.Budget) budgetItem {
	items := make([]lineItemItem, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, lineItemItem{
			ID:          it.ID,
			Name:        it.Name,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   int64(it.UnitPrice),
		})
	}
	return budgetItem{
		ID: b.ID,
		Client: clientItem{
			Name:    b.Client.Name,
			Email:   b.Client.Email,
			Phone:   b.Client.Phone,
			Address: b.Client.Address,
			City:    b.Client.City,
			ZipCode: b.Client.ZipCode,
		},
		Items:     items,
		Template:  string(b.Template),
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
		Total:     int64(b.Total),
		PDFFileID: b.PDFFileID,
	}
}

func fromBudgetItem(it budgetItem) entities.Budget {
	items := make([]entities.LineItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.LineItem{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			UnitPrice:   money.Cents(li.UnitPrice),
		})
	}
	return entities.Budget{
		ID: it.ID,
		Client: entities.Client{
			Name:    it.Client.Name,
			Email:   it.Client.Email,
			Phone:   it.Client.Phone,
			Address: it.Client.Address,
			City:    it.Client.City,
			ZipCode: it.Client.ZipCode,
		},
		Items:     items,
		Template:  entities.BudgetTemplate(it.Template),
		Notes:     it.Notes,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
		Total:     money.Cents(it.Total),
		PDFFileID: it.PDFFileID,
	}
}
